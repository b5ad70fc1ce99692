// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 未调用 Init() 时回退到直接读取磁盘文件（开发模式与测试用）。
package embedded

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

var (
	dataFS      embed.FS
	initialized bool
)

// Init 初始化 embed.FS 变量
// 应在 main() 开始时、任何配置加载之前调用
func Init(data embed.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// ReadFile 读取指定路径的资源文件
// 已初始化时从嵌入文件系统读取，否则回退到磁盘
func ReadFile(path string) ([]byte, error) {
	// embed.FS 使用正斜杠路径
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")

	if initialized {
		return dataFS.ReadFile(path)
	}
	return os.ReadFile(path)
}
