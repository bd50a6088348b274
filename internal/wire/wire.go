//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"
	"github.com/todoapi/backend/internal/application"
	"github.com/todoapi/backend/internal/infrastructure"
	"github.com/todoapi/backend/internal/interfaces"
)

// InitializeApp 初始化应用
func InitializeApp() (*App, error) {
	wire.Build(
		// 按层组合 ProviderSet
		infrastructure.ProviderSet, // 基础设施层
		application.ProviderSet,    // 应用层
		interfaces.ProviderSet,     // 接口层
		NewApp,                     // 组合所有服务的应用结构
	)
	return nil, nil
}
