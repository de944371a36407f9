package fabric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dep2p/go-sockprov/internal/core/params"
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
	"github.com/dep2p/go-sockprov/pkg/types"
)

// TestModule 测试 Fx 模块装配
func TestModule(t *testing.T) {
	var (
		m        *Manager
		lookup   pkgif.ObjectLookup
		verifier pkgif.DomainAttrVerifier
	)
	app := fxtest.New(t,
		params.Module(),
		Module(),
		fx.Populate(&m, &lookup, &verifier),
	)
	app.RequireStart()

	f, err := m.CreateFabric(&types.FabricAttr{Name: types.FabricName}, nil)
	require.NoError(t, err)
	assert.True(t, lookup.HasFabric(f.ID()), "ObjectLookup 与管理器共用注册表")
	assert.ErrorIs(t, verifier.VerifyDomainAttr(&types.DomainAttr{Name: "x"}), types.ErrNoData)

	app.RequireStop()
	assert.False(t, lookup.HasFabric(f.ID()), "停止时关闭空闲 fabric")
}
