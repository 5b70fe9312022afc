//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/util"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/x/access"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/x/auth"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/x/document"
)

var documentServiceProvider = wire.NewSet(document.NewService, document.NewRepository)

func SetupAccessService(config util.Config) core.AccessService {
	wire.Build(access.NewService)
	return nil
}

func SetupDocumentService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, accessService core.AccessService, config util.Config) core.DocumentService {
	wire.Build(documentServiceProvider)
	return nil
}

func SetupDocumentHandler(documentService core.DocumentService, accessService core.AccessService, config util.Config) document.Handler {
	wire.Build(document.NewHandler)
	return nil
}

func SetupAuthHandler() auth.Handler {
	wire.Build(auth.NewHandler)
	return nil
}
