package interfaces

import "github.com/dep2p/go-sockprov/pkg/types"

// ObjectLookup 存活对象查询
//
// 这是校验 hints 中 Fabric/Domain 标识的唯一手段：
// 标识不在注册表中时协商失败，而不是解引用可能失效的对象。
type ObjectLookup interface {
	// HasFabric fabric 是否仍由本 provider 管理
	HasFabric(id types.FabricID) bool

	// HasDomain domain 是否仍由本 provider 管理
	HasDomain(id types.DomainID) bool
}

// DomainAttrVerifier domain 属性校验器
type DomainAttrVerifier interface {
	// VerifyDomainAttr 校验 domain 属性，nil 表示不关心
	VerifyDomainAttr(attr *types.DomainAttr) error
}
