package main

import (
	"context"
	"encoding/base64"
	"flag"
	"os"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/nasch-settings/task"
	"github.com/tsinghua-fib-lab/nasch-settings/utils/config"
	"github.com/tsinghua-fib-lab/nasch-settings/utils/input"
	"github.com/tsinghua-fib-lab/nasch-settings/utils/output"
)

var (
	// 任务名，仅用于日志
	job = flag.String("job", "settings", "the name of the generation job")
	// 参数表CSV路径，优先级高于配置文件中的input.file
	inputPath = flag.String("input", "", "parameter CSV file path")
	// 配置文件路径
	configPath = flag.String("config", "", "config file path (optional)")
	// 配置文件Base64编码后的数据
	configData = flag.String("config-data", "", "config file base64 encoded data")
	// 输出目录，优先级高于配置文件中的output.dir
	outDir = flag.String("out", "", "output directory for generated topology files")
	// 检查模式：检查命令行中列出的已生成配置文件，不生成新文件
	checkMode = flag.Bool("check", false, "check the topology files given as arguments instead of generating")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "log level (trace debug info warn error critical off)")

	log = logrus.WithField("module", "settings")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}

	if *checkMode {
		if flag.NArg() == 0 {
			log.Fatal("-check needs at least one topology file")
		}
		if err := task.CheckFiles(flag.Args()); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	// 获取配置，配置文件可选
	var file []byte
	var err error
	if *configPath != "" {
		file, err = os.ReadFile(*configPath)
		if err != nil {
			log.Panicf("config file load err: %v", err)
		}
	} else if *configData != "" {
		file, err = base64.StdEncoding.DecodeString(*configData)
		if err != nil {
			log.Panicf("config data load err: %v", err)
		}
	}
	c, err := config.Load(file)
	if err != nil {
		log.Panicf("%v", err)
	}
	if *inputPath != "" {
		c.Input.File = *inputPath
	}
	if *outDir != "" {
		c.Output.Dir = *outDir
	}
	rc, err := config.NewRuntimeConfig(c)
	if err != nil {
		log.Panicf("config err: %v", err)
	}
	log.Debugf("%+v", rc)

	source, err := input.NewSource(rc.All.Input)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := output.PrepareDir(rc.OutputDir); err != nil {
		log.Fatalf("%v", err)
	}
	t := task.NewContext(*job, rc, source, output.NewFileWriter(rc.OutputDir, rc.Indent))
	if err := t.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
	log.Infof("generated %d topology files", len(t.Generated()))
}
