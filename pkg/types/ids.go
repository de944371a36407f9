package types

import "github.com/google/uuid"

// ============================================================================
//                              对象标识
// ============================================================================

// FabricID Fabric 对象的不透明标识
//
// 零值表示未指定。hints 中出现的 FabricID 必须仍在注册表中，
// 否则协商返回 ErrNoData。
type FabricID uuid.UUID

// NewFabricID 生成新的 FabricID
func NewFabricID() FabricID {
	return FabricID(uuid.New())
}

// IsZero 是否未指定
func (id FabricID) IsZero() bool {
	return id == FabricID(uuid.Nil)
}

// String 返回字符串表示
func (id FabricID) String() string {
	return uuid.UUID(id).String()
}

// DomainID Domain 对象的不透明标识
type DomainID uuid.UUID

// NewDomainID 生成新的 DomainID
func NewDomainID() DomainID {
	return DomainID(uuid.New())
}

// IsZero 是否未指定
func (id DomainID) IsZero() bool {
	return id == DomainID(uuid.Nil)
}

// String 返回字符串表示
func (id DomainID) String() string {
	return uuid.UUID(id).String()
}
