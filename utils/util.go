package utils

// Find 找出ID对应的数据。
// 如果ids为空则返回空结果，
// 如果不存在则将失败ID记录到失败列表中（同一ID只记录一次）。
func Find[K comparable, T any](dataMap map[K]T, ids []K) (okData []T, failedIDs []K) {
	okData = make([]T, 0, len(ids))
	failedIDs = make([]K, 0)
	failed := make(map[K]struct{})
	for _, id := range ids {
		if d, ok := dataMap[id]; ok {
			okData = append(okData, d)
		} else if _, seen := failed[id]; !seen {
			failed[id] = struct{}{}
			failedIDs = append(failedIDs, id)
		}
	}
	return
}
