// Package main 提供 sockinfo 命令行工具
//
// sockinfo 列出 sockets provider 对给定寻址信息和 hints 能提供的传输配置。
//
// 使用方法:
//
//	sockinfo                          # 本机全部端点类型
//	sockinfo -n 10.0.0.2 -s 7471 -t rdm
//	sockinfo -s 7471 -source -c msg,tagged
//	sockinfo -config sockprov.json -v
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dep2p/go-sockprov"
	"github.com/dep2p/go-sockprov/pkg/types"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "❌ 错误: %v\n", err)
		os.Exit(1)
	}
}

// cliFlags 命令行参数
type cliFlags struct {
	node       string
	service    string
	epType     string
	caps       string
	source     bool
	numeric    bool
	verbose    bool
	configFile string
	timeout    time.Duration
	version    bool
}

func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("sockinfo", flag.ContinueOnError)
	fs.StringVar(&f.node, "n", "", "节点名或 IPv4 地址")
	fs.StringVar(&f.service, "s", "", "服务名或端口")
	fs.StringVar(&f.epType, "t", "", "端点类型: msg | dgram | rdm")
	fs.StringVar(&f.caps, "c", "", "能力列表，例如 msg,tagged 或 FI_MSG|FI_RMA")
	fs.BoolVar(&f.source, "source", false, "node/service 描述本地端")
	fs.BoolVar(&f.numeric, "numeric", false, "node 必须是数字地址")
	fs.BoolVar(&f.verbose, "v", false, "输出完整属性")
	fs.StringVar(&f.configFile, "config", "", "JSON 配置文件")
	fs.DurationVar(&f.timeout, "timeout", 10*time.Second, "发现超时")
	fs.BoolVar(&f.version, "version", false, "打印版本")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// buildHints 从命令行参数构建 hints，没有任何约束时返回 nil
func (f *cliFlags) buildHints() (*types.Info, error) {
	if f.epType == "" && f.caps == "" {
		return nil, nil
	}
	hints := &types.Info{}
	if f.epType != "" {
		ep, err := types.ParseEndpointType(f.epType)
		if err != nil {
			return nil, err
		}
		hints.EPAttr = &types.EPAttr{Type: ep}
	}
	if f.caps != "" {
		caps, err := types.ParseCaps(f.caps)
		if err != nil {
			return nil, err
		}
		hints.Caps = caps
	}
	return hints, nil
}

func (f *cliFlags) getInfoFlags() types.GetInfoFlags {
	var flags types.GetInfoFlags
	if f.source {
		flags |= types.FlagSource
	}
	if f.numeric {
		flags |= types.FlagNumericHost
	}
	return flags
}

func run(args []string, out io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	if f.version {
		fmt.Fprintln(out, sockprov.VersionInfo())
		return nil
	}

	hints, err := f.buildHints()
	if err != nil {
		return fmt.Errorf("解析 hints 失败: %w", err)
	}

	opts := []sockprov.Option{sockprov.WithMetrics(false)}
	if f.configFile != "" {
		data, err := os.ReadFile(f.configFile) //nolint:gosec // G304: 用户指定的配置文件路径是预期行为
		if err != nil {
			return fmt.Errorf("读取配置文件失败: %w", err)
		}
		opts = append(opts, sockprov.WithConfigJSON(data), sockprov.WithMetrics(false))
	}

	prov, err := sockprov.New(opts...)
	if err != nil {
		return fmt.Errorf("创建 provider 失败: %w", err)
	}
	defer func() { _ = prov.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	infos, err := prov.GetInfo(ctx, f.node, f.service, f.getInfoFlags(), hints)
	if err != nil {
		return err
	}

	for _, info := range infos {
		if f.verbose {
			printInfoVerbose(out, info)
		} else {
			printInfo(out, info)
		}
	}
	return nil
}
