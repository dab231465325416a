// Package mocks provides mock implementations of the core ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks.
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	catalog := mocks.NewMockCatalog(ctrl)
//	catalog.EXPECT().Scene(gomock.Any(), uint32(0x02DC5000)).Return(scene, nil)
package mocks

// Generate mock for the Catalog interface from internal/core package.
// This creates MockCatalog with methods for all Catalog interface methods:
// Summary, Files, FileData, Scenes, Scene, Room, Messages, ColorMap
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=catalog_mock.go github.com/L-P/mme/internal/core Catalog

// Generate mock for the CacheRepository interface from internal/core package.
// This creates MockCacheRepository with methods for all CacheRepository interface methods:
// Set, Get, Delete, DeleteMatching, Health
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/L-P/mme/internal/core CacheRepository
