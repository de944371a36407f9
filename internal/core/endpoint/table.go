package endpoint

import (
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
	"github.com/dep2p/go-sockprov/pkg/types"
)

// KindTable 有序的端点类型集合
type KindTable struct {
	kinds []pkgif.EndpointKind
}

// NewKindTable 按给定顺序创建类型表，同一类型只保留第一个
func NewKindTable(kinds ...pkgif.EndpointKind) *KindTable {
	t := &KindTable{}
	for _, k := range kinds {
		if _, dup := t.Lookup(k.Type()); dup {
			continue
		}
		t.kinds = append(t.kinds, k)
	}
	return t
}

// DefaultKindTable 返回 msg、dgram、rdm 顺序的类型表
func DefaultKindTable() *KindTable {
	return NewKindTable(
		NewKind(MsgProfile()),
		NewKind(DgramProfile()),
		NewKind(RDMProfile()),
	)
}

// All 按枚举顺序返回全部类型
func (t *KindTable) All() []pkgif.EndpointKind {
	out := make([]pkgif.EndpointKind, len(t.kinds))
	copy(out, t.kinds)
	return out
}

// Lookup 按端点类型查找
func (t *KindTable) Lookup(ep types.EndpointType) (pkgif.EndpointKind, bool) {
	for _, k := range t.kinds {
		if k.Type() == ep {
			return k, true
		}
	}
	return nil, false
}
