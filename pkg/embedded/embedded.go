// Package embedded 提供嵌入资源的统一访问接口
//
// Go embed 指令只能嵌入当前包目录及其子目录的文件，
// 因此 embed.FS 变量声明在项目根目录（embed.go），由 main 在启动时调用 Init 注入。
//
// 路径以 "data/" 开头时从嵌入的数据读取；Overlay 设置的磁盘目录优先，
// 便于开发时不重新编译就修改配置。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized Init 之前访问嵌入资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	dataFS      fs.FS
	overlayFS   fs.FS
	initialized bool
)

// Init 注入嵌入的数据文件系统（根目录下包含 data/）
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// Overlay 设置优先于嵌入数据的磁盘目录（目录下同样包含 data/），nil 取消
func Overlay(dir fs.FS) {
	overlayFS = dir
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

func normalize(path string) (string, error) {
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile 读取文件内容，路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	if overlayFS != nil {
		if data, err := fs.ReadFile(overlayFS, path); err == nil {
			return data, nil
		}
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	_, err := ReadFile(path)
	return err == nil
}

// ReadDir 读取目录内容（只读嵌入数据）
func ReadDir(path string) ([]fs.DirEntry, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(dataFS, path)
}
