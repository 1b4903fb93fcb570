package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/playerstats --output domain/playerstats --outpkg playerstatsmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name LedgerRepository --dir ../domain/scoreevent --output domain/scoreevent --outpkg scoreeventmock --filename ledger_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name LedgerTx --dir ../domain/scoreevent --output domain/scoreevent --outpkg scoreeventmock --filename ledger_tx_mock.go
