package service

import (
	"github.com/Freeman45/encrypted-Diary/internal/config"
	"github.com/Freeman45/encrypted-Diary/internal/crypto"
	"github.com/Freeman45/encrypted-Diary/internal/store"
	"github.com/Freeman45/encrypted-Diary/internal/wallet"
)

// ClientServices groups the client use cases into a single value passed to
// the UI layer. Currently the diary is the only service.
type ClientServices struct {
	DiaryService DiaryService
}

// NewClientServices builds the service layer over the storage layer and the
// wallet connector.
func NewClientServices(storages *store.ClientStorages, journal wallet.ContractJournal, contract config.ClientContract) *ClientServices {
	return &ClientServices{
		DiaryService: NewDiaryService(storages.EntryRepository, crypto.NewDiaryCipher(), journal, contract),
	}
}
