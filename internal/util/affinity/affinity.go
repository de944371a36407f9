// Package affinity 解析进度线程的 CPU 亲和性描述
//
// 描述格式: id_start[-id_end[:stride]][,...]，例如 "0-7:2,12"。
package affinity

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MaxCPU 可描述的最大 CPU 编号（不含）
const MaxCPU = 1024

var (
	// ErrInvalidSpec 描述格式错误
	ErrInvalidSpec = errors.New("affinity: invalid spec")

	// ErrUnsupported 当前平台不支持绑定 CPU
	ErrUnsupported = errors.New("affinity: not supported on this platform")
)

// Parse 解析亲和性描述，返回去重后升序的 CPU 编号
//
// 空字符串返回 nil, nil（未设置）。
func Parse(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	seen := make(map[int]struct{})
	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			// 允许结尾的逗号
			continue
		}
		start, end, stride, err := parseRange(item)
		if err != nil {
			return nil, err
		}
		for id := start; id <= end; id += stride {
			seen[id] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return nil, fmt.Errorf("%w: %q selects no cpu", ErrInvalidSpec, spec)
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func parseRange(item string) (start, end, stride int, err error) {
	rangePart, stridePart, hasStride := strings.Cut(item, ":")
	startStr, endStr, hasEnd := strings.Cut(rangePart, "-")
	if hasStride && !hasEnd {
		return 0, 0, 0, fmt.Errorf("%w: stride without range in %q", ErrInvalidSpec, item)
	}

	if start, err = parseID(startStr); err != nil {
		return 0, 0, 0, err
	}
	end, stride = start, 1
	if hasEnd {
		if end, err = parseID(endStr); err != nil {
			return 0, 0, 0, err
		}
	}
	if hasStride {
		stride, err = strconv.Atoi(strings.TrimSpace(stridePart))
		if err != nil || stride <= 0 {
			return 0, 0, 0, fmt.Errorf("%w: bad stride in %q", ErrInvalidSpec, item)
		}
	}
	if end < start {
		return 0, 0, 0, fmt.Errorf("%w: descending range %q", ErrInvalidSpec, item)
	}
	return start, end, stride, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id < 0 || id >= MaxCPU {
		return 0, fmt.Errorf("%w: bad cpu id %q", ErrInvalidSpec, s)
	}
	return id, nil
}
