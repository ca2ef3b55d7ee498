package trackhaus

//go:generate moq -out mocks/trackhaus.gen.go -pkg mocks . StorageService StorageTx CatalogStorage PlayStorage ListenerStorage
