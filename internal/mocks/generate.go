package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayerDataProvider --dir ../usecase --output usecase --outpkg usecasemock --filename player_data_provider_mock.go
