package infrastructure

import (
	"github.com/google/wire"
	"github.com/todoapi/backend/internal/infrastructure/config"
	"github.com/todoapi/backend/internal/infrastructure/storage"
)

// ProviderSet Infrastructure 层总 ProviderSet
var ProviderSet = wire.NewSet(
	config.ProviderSet,
	storage.ProviderSet,
)
