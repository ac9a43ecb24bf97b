package config

// InputPath 指定MongoDB中参数集合的位置
type InputPath struct {
	DB  string `yaml:"db"`  // 数据库名
	Col string `yaml:"col"` // 集合名
}

// GetDb 获取数据库名
func (p InputPath) GetDb() string {
	return p.DB
}

// GetColl 获取集合名
func (p InputPath) GetColl() string {
	return p.Col
}

// Input 参数表来源的配置项
// 说明：File非空时从CSV文件读取，否则从MongoDB（URI + Params）读取
type Input struct {
	File   string     `yaml:"file,omitempty"`   // CSV文件路径
	URI    string     `yaml:"uri,omitempty"`    // MongoDB连接字符串
	Params *InputPath `yaml:"params,omitempty"` // 参数集合
}

// Output 路网配置文件输出的配置项
type Output struct {
	Dir    string `yaml:"dir,omitempty"`    // 输出目录，outputFilename为相对路径时拼接在其后
	Indent *int   `yaml:"indent,omitempty"` // JSON缩进空格数，0表示紧凑输出
}

// Topology 路网生成的全局设置
type Topology struct {
	TransitionTime     *int32 `yaml:"transition_time,omitempty"`     // 信号灯组切换时间
	ExternalController string `yaml:"external_controller,omitempty"` // 外部控制器名称
}

// Config YAML配置文件的根结构
type Config struct {
	Input    Input    `yaml:"input"`
	Output   Output   `yaml:"output"`
	Topology Topology `yaml:"topology"`
}
