// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Freeman45/encrypted-Diary/internal/config"
	"github.com/Freeman45/encrypted-Diary/internal/crypto"
	"github.com/Freeman45/encrypted-Diary/internal/mock"
	"github.com/Freeman45/encrypted-Diary/internal/store"
	"github.com/Freeman45/encrypted-Diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testWallet   = "0xABCD000000000000000000000000000000000001"
	testContract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

// newTestDiarySvc — хелпер для создания diaryService с моками
func newTestDiarySvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*diaryService,
	*mock.MockEntryRepository,
	*mock.MockDiaryCipher,
	*mock.MockContractJournal,
) {
	t.Helper()
	mockRepo := mock.NewMockEntryRepository(ctrl)
	mockCipher := mock.NewMockDiaryCipher(ctrl)
	mockJournal := mock.NewMockContractJournal(ctrl)

	contract := config.ClientContract{Address: testContract, Enabled: true}
	svc := NewDiaryService(mockRepo, mockCipher, mockJournal, contract).(*diaryService)

	return svc, mockRepo, mockCipher, mockJournal
}

// unlockDirectly подсовывает сессию в обход Unlock: интересующая операция
// тестируется без лишних ожиданий на моках.
func unlockDirectly(svc *diaryService, entries ...models.DiaryEntry) {
	svc.address = testWallet
	svc.key = testKey
	svc.entries = entries
}

func storedEntry(id, ciphertext string, ts time.Time) models.DiaryEntry {
	return models.DiaryEntry{
		ID:         id,
		Ciphertext: ciphertext,
		Hash:       "digest-" + id,
		Timestamp:  ts,
	}
}

// ── Unlock / Lock ────────────────────────────────────────────────────────────

func TestDiaryService_Unlock_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCipher, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	older := storedEntry("id-old", "enc-old", time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	newer := storedEntry("id-new", "enc-new", time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC))

	mockCipher.EXPECT().DeriveKey(testWallet).Return(testKey)
	// хранилище отдаёт записи в произвольном порядке — старые вперёд
	mockRepo.EXPECT().Load(ctx, testWallet).Return([]models.DiaryEntry{older, newer}, nil)
	mockCipher.EXPECT().Decrypt("enc-old", testKey).Return("старая запись", nil)
	mockCipher.EXPECT().Decrypt("enc-new", testKey).Return("новая запись", nil)

	err := svc.Unlock(ctx, testWallet)
	require.NoError(t, err)

	assert.Equal(t, testWallet, svc.Address())

	entries := svc.Entries()
	require.Len(t, entries, 2)

	// свежие записи первыми
	assert.Equal(t, "id-new", entries[0].ID)
	assert.Equal(t, "новая запись", entries[0].Plaintext)
	assert.Equal(t, "id-old", entries[1].ID)
	assert.Equal(t, "старая запись", entries[1].Plaintext)

	// видимость после разблокировки всегда выключена
	assert.False(t, entries[0].IsVisible)
	assert.False(t, entries[1].IsVisible)
}

func TestDiaryService_Unlock_EmptyAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestDiarySvc(t, ctrl)

	err := svc.Unlock(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoAccount)
}

func TestDiaryService_Unlock_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCipher, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	mockCipher.EXPECT().DeriveKey(testWallet).Return(testKey)
	mockRepo.EXPECT().Load(ctx, testWallet).Return(nil, errors.New("database is locked"))

	err := svc.Unlock(ctx, testWallet)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load diary")
	assert.Empty(t, svc.Address())
}

func TestDiaryService_Unlock_KeepsUndecryptableEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCipher, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	good := storedEntry("id-good", "enc-good", time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC))
	bad := storedEntry("id-bad", "enc-bad", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	mockCipher.EXPECT().DeriveKey(testWallet).Return(testKey)
	mockRepo.EXPECT().Load(ctx, testWallet).Return([]models.DiaryEntry{good, bad}, nil)
	mockCipher.EXPECT().Decrypt("enc-good", testKey).Return("читается", nil)
	mockCipher.EXPECT().Decrypt("enc-bad", testKey).Return("", crypto.ErrDecryption)

	err := svc.Unlock(ctx, testWallet)
	require.NoError(t, err)

	entries := svc.Entries()
	require.Len(t, entries, 2, "нечитаемая запись остаётся в списке")
	assert.Equal(t, "читается", entries[0].Plaintext)
	assert.Empty(t, entries[1].Plaintext)
}

func TestDiaryService_Lock_WipesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestDiarySvc(t, ctrl)
	key := append([]byte(nil), testKey...)
	svc.address = testWallet
	svc.key = key
	svc.entries = []models.DiaryEntry{{ID: "id", Plaintext: "секрет"}}

	svc.Lock()

	assert.Empty(t, svc.Address())
	assert.Empty(t, svc.Entries())
	assert.Nil(t, svc.key)

	// ключ затирается, а не просто забывается
	for i, b := range key {
		assert.Zerof(t, b, "key byte %d must be wiped", i)
	}
}

// ── SaveEntry ────────────────────────────────────────────────────────────────

func TestDiaryService_SaveEntry_RejectsEmptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// моки без ожиданий: ни репозиторий, ни шифр вызываться не должны
	svc, _, _, _ := newTestDiarySvc(t, ctrl)
	unlockDirectly(svc)

	for _, text := range []string{"", "   ", "\n\t  \n"} {
		_, err := svc.SaveEntry(context.Background(), text)
		assert.ErrorIs(t, err, ErrEmptyEntry, "text %q", text)
	}

	assert.Empty(t, svc.Entries())
}

func TestDiaryService_SaveEntry_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestDiarySvc(t, ctrl)

	_, err := svc.SaveEntry(context.Background(), "привет")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoAccount)
}

func TestDiaryService_SaveEntry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCipher, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()
	unlockDirectly(svc)

	savedAt := time.Date(2026, 8, 2, 12, 30, 0, 0, time.UTC)
	record := &models.EncryptedDiaryEntry{
		Ciphertext:    "enc-hello",
		Timestamp:     savedAt.UnixMilli(),
		Hash:          "digest-hello",
		WalletAddress: testWallet,
	}

	gomock.InOrder(
		mockCipher.EXPECT().BuildRecord("hello", testWallet, testKey).Return(record, nil),
		mockRepo.EXPECT().Save(ctx, testWallet, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, entries []models.DiaryEntry) error {
				require.Len(t, entries, 1)
				assert.Equal(t, "enc-hello", entries[0].Ciphertext)
				assert.Equal(t, "digest-hello", entries[0].Hash)
				assert.NotEmpty(t, entries[0].ID)
				return nil
			},
		),
	)

	entry, err := svc.SaveEntry(ctx, "hello")
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "hello", entry.Plaintext)
	assert.Equal(t, "enc-hello", entry.Ciphertext)
	assert.True(t, savedAt.Equal(entry.Timestamp))

	entries := svc.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
}

func TestDiaryService_SaveEntry_PrependsNewEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCipher, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	existing := storedEntry("id-old", "enc-old", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	unlockDirectly(svc, existing)

	record := &models.EncryptedDiaryEntry{
		Ciphertext:    "enc-new",
		Timestamp:     time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC).UnixMilli(),
		Hash:          "digest-new",
		WalletAddress: testWallet,
	}

	mockCipher.EXPECT().BuildRecord("свежее", testWallet, testKey).Return(record, nil)
	// сохраняется весь список целиком, новая запись впереди
	mockRepo.EXPECT().Save(ctx, testWallet, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, entries []models.DiaryEntry) error {
			require.Len(t, entries, 2)
			assert.Equal(t, "enc-new", entries[0].Ciphertext)
			assert.Equal(t, "id-old", entries[1].ID)
			return nil
		},
	)

	_, err := svc.SaveEntry(ctx, "свежее")
	require.NoError(t, err)

	entries := svc.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "enc-new", entries[0].Ciphertext)
}

func TestDiaryService_SaveEntry_EncryptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCipher, _ := newTestDiarySvc(t, ctrl)
	unlockDirectly(svc)

	mockCipher.EXPECT().BuildRecord("hello", testWallet, testKey).
		Return(nil, crypto.ErrEncryption)

	_, err := svc.SaveEntry(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrEncryption)
	assert.Empty(t, svc.Entries())
}

func TestDiaryService_SaveEntry_PersistErrorKeepsMemoryConsistent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCipher, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()
	unlockDirectly(svc)

	record := &models.EncryptedDiaryEntry{Ciphertext: "enc", Timestamp: 1, Hash: "h", WalletAddress: testWallet}
	mockCipher.EXPECT().BuildRecord("hello", testWallet, testKey).Return(record, nil)
	mockRepo.EXPECT().Save(ctx, testWallet, gomock.Any()).Return(store.ErrExecutingStatement)

	_, err := svc.SaveEntry(ctx, "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrExecutingStatement)

	// список в памяти не должен разойтись с хранилищем
	assert.Empty(t, svc.Entries())
}

// ── SubmitEntry ──────────────────────────────────────────────────────────────

func TestDiaryService_SubmitEntry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCipher, mockJournal := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	entry := storedEntry("id-1", "enc-1", time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC))
	unlockDirectly(svc, entry)

	serialized := `{"ciphertext":"enc-1"}`

	gomock.InOrder(
		mockCipher.EXPECT().Serialize(gomock.Any()).DoAndReturn(
			func(record *models.EncryptedDiaryEntry) (string, error) {
				assert.Equal(t, "enc-1", record.Ciphertext)
				assert.Equal(t, "digest-id-1", record.Hash)
				assert.Equal(t, entry.Timestamp.UnixMilli(), record.Timestamp)
				assert.Equal(t, testWallet, record.WalletAddress)
				return serialized, nil
			},
		),
		mockJournal.EXPECT().SubmitEntry(ctx, []byte(serialized)).Return("0xdeadbeef", nil),
	)

	txHash, err := svc.SubmitEntry(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "0xdeadbeef", txHash)
}

func TestDiaryService_SubmitEntry_RemoteDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockEntryRepository(ctrl)
	mockCipher := mock.NewMockDiaryCipher(ctrl)
	mockJournal := mock.NewMockContractJournal(ctrl)

	// адрес контракта есть, но функция выключена
	contract := config.ClientContract{Address: testContract, Enabled: false}
	svc := NewDiaryService(mockRepo, mockCipher, mockJournal, contract).(*diaryService)
	unlockDirectly(svc, storedEntry("id-1", "enc", time.Now()))

	_, err := svc.SubmitEntry(context.Background(), "id-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteDisabled)
	assert.False(t, svc.RemoteEnabled())
}

func TestDiaryService_SubmitEntry_EntryNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestDiarySvc(t, ctrl)
	unlockDirectly(svc)

	_, err := svc.SubmitEntry(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDiaryService_SubmitEntry_JournalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCipher, mockJournal := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	entry := storedEntry("id-1", "enc-1", time.Now())
	unlockDirectly(svc, entry)

	errRejected := errors.New("user rejected the transaction")

	mockCipher.EXPECT().Serialize(gomock.Any()).Return("{}", nil)
	mockJournal.EXPECT().SubmitEntry(ctx, []byte("{}")).Return("", errRejected)

	_, err := svc.SubmitEntry(ctx, "id-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteSubmission)
	assert.ErrorIs(t, err, errRejected)

	// локальная копия не пострадала
	require.Len(t, svc.Entries(), 1)
}

// ── ToggleVisibility / Reveal ────────────────────────────────────────────────

func TestDiaryService_ToggleVisibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestDiarySvc(t, ctrl)
	unlockDirectly(svc, storedEntry("id-1", "enc", time.Now()))

	// неизвестный id — no-op
	assert.False(t, svc.ToggleVisibility("ghost"))

	assert.True(t, svc.ToggleVisibility("id-1"))
	assert.True(t, svc.Entries()[0].IsVisible)

	// повторный вызов прячет запись обратно
	assert.True(t, svc.ToggleVisibility("id-1"))
	assert.False(t, svc.Entries()[0].IsVisible)
}

func TestDiaryService_Reveal_Locked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestDiarySvc(t, ctrl)

	result := svc.Reveal("id-1")
	assert.False(t, result.Valid)
	assert.Equal(t, "session is locked", result.Reason)
}

func TestDiaryService_Reveal_UnknownEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestDiarySvc(t, ctrl)
	unlockDirectly(svc)

	result := svc.Reveal("ghost")
	assert.False(t, result.Valid)
	assert.Equal(t, "entry not found", result.Reason)
}

func TestDiaryService_Reveal_DelegatesToCipher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCipher, _ := newTestDiarySvc(t, ctrl)

	entry := storedEntry("id-1", "enc-1", time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC))
	unlockDirectly(svc, entry)

	mockCipher.EXPECT().DecryptAndVerify(gomock.Any(), testKey).DoAndReturn(
		func(record *models.EncryptedDiaryEntry, _ []byte) models.RevealResult {
			assert.Equal(t, "enc-1", record.Ciphertext)
			assert.Equal(t, "digest-id-1", record.Hash)
			assert.Equal(t, testWallet, record.WalletAddress)
			return models.RevealResult{Plaintext: "секретный текст", Valid: true}
		},
	)

	result := svc.Reveal("id-1")
	assert.True(t, result.Valid)
	assert.Equal(t, "секретный текст", result.Plaintext)
	assert.Empty(t, result.Reason)
}

// ── DeleteEntry ──────────────────────────────────────────────────────────────

func TestDiaryService_DeleteEntry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	keep := storedEntry("id-keep", "enc-keep", time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC))
	drop := storedEntry("id-drop", "enc-drop", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	unlockDirectly(svc, keep, drop)

	mockRepo.EXPECT().Save(ctx, testWallet, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, entries []models.DiaryEntry) error {
			require.Len(t, entries, 1)
			assert.Equal(t, "id-keep", entries[0].ID)
			return nil
		},
	)

	err := svc.DeleteEntry(ctx, "id-drop")
	require.NoError(t, err)

	entries := svc.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "id-keep", entries[0].ID)
}

func TestDiaryService_DeleteEntry_UnknownIDIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Save не должен вызываться: у мока нет ожиданий
	svc, _, _, _ := newTestDiarySvc(t, ctrl)
	unlockDirectly(svc, storedEntry("id-1", "enc", time.Now()))

	err := svc.DeleteEntry(context.Background(), "ghost")
	require.NoError(t, err)
	require.Len(t, svc.Entries(), 1)
}

func TestDiaryService_DeleteEntry_PersistError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()
	unlockDirectly(svc, storedEntry("id-1", "enc", time.Now()))

	mockRepo.EXPECT().Save(ctx, testWallet, gomock.Any()).Return(errors.New("disk I/O error"))

	err := svc.DeleteEntry(ctx, "id-1")
	require.Error(t, err)

	// запись остаётся в памяти, раз удаление не сохранилось
	require.Len(t, svc.Entries(), 1)
}

func TestDiaryService_DeleteEntry_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestDiarySvc(t, ctrl)

	err := svc.DeleteEntry(context.Background(), "id-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoAccount)
}

// ── Integration: реальная крипта и in-memory хранилище ───────────────────────

// newIntegrationDiarySvc создаёт сервис с настоящим DiaryCipher и настоящим
// in-memory репозиторием. Моков нет: проверяется весь путь шифрования.
func newIntegrationDiarySvc(t *testing.T, repo store.EntryRepository) DiaryService {
	t.Helper()
	return NewDiaryService(repo, crypto.NewDiaryCipher(), nil, config.ClientContract{})
}

func TestIntegration_SaveThenReloadRestoresEntries(t *testing.T) {
	repo := store.NewMemoryEntryRepository()
	ctx := context.Background()

	first := newIntegrationDiarySvc(t, repo)
	require.NoError(t, first.Unlock(ctx, testWallet))

	saved, err := first.SaveEntry(ctx, "hello, дневник")
	require.NoError(t, err)
	require.NotEmpty(t, saved.Ciphertext)
	assert.NotContains(t, saved.Ciphertext, "hello")

	// «перезапуск приложения»: новый сервис поверх того же хранилища
	second := newIntegrationDiarySvc(t, repo)
	require.NoError(t, second.Unlock(ctx, testWallet))

	entries := second.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, saved.ID, entries[0].ID)
	assert.Equal(t, "hello, дневник", entries[0].Plaintext, "текст восстанавливается из шифротекста")

	result := second.Reveal(saved.ID)
	assert.True(t, result.Valid)
	assert.Equal(t, "hello, дневник", result.Plaintext)
}

func TestIntegration_EmptyTextIsNeverPersisted(t *testing.T) {
	repo := store.NewMemoryEntryRepository()
	ctx := context.Background()

	svc := newIntegrationDiarySvc(t, repo)
	require.NoError(t, svc.Unlock(ctx, testWallet))

	_, err := svc.SaveEntry(ctx, "   \n ")
	assert.ErrorIs(t, err, ErrEmptyEntry)

	stored, err := repo.Load(ctx, testWallet)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestIntegration_EntriesAreReverseChronological(t *testing.T) {
	repo := store.NewMemoryEntryRepository()
	ctx := context.Background()

	svc := newIntegrationDiarySvc(t, repo)
	require.NoError(t, svc.Unlock(ctx, testWallet))

	texts := []string{"первая", "вторая", "третья"}
	for _, text := range texts {
		_, err := svc.SaveEntry(ctx, text)
		require.NoError(t, err)
		// отметки времени в миллисекундах: записи должны различаться
		time.Sleep(2 * time.Millisecond)
	}

	entries := svc.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "третья", entries[0].Plaintext)
	assert.Equal(t, "вторая", entries[1].Plaintext)
	assert.Equal(t, "первая", entries[2].Plaintext)

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i-1].Timestamp.Before(entries[i].Timestamp))
	}
}

func TestIntegration_AccountsDoNotSeeEachOther(t *testing.T) {
	repo := store.NewMemoryEntryRepository()
	ctx := context.Background()

	alice := newIntegrationDiarySvc(t, repo)
	require.NoError(t, alice.Unlock(ctx, "0xAAAA000000000000000000000000000000000001"))
	_, err := alice.SaveEntry(ctx, "секрет алисы")
	require.NoError(t, err)

	bob := newIntegrationDiarySvc(t, repo)
	require.NoError(t, bob.Unlock(ctx, "0xBBBB000000000000000000000000000000000002"))
	assert.Empty(t, bob.Entries())
}

// Чужой блоб под чужим ключом: записи видны, но не расшифровываются.
func TestIntegration_ForeignBlobDoesNotDecrypt(t *testing.T) {
	repo := store.NewMemoryEntryRepository()
	ctx := context.Background()

	owner := newIntegrationDiarySvc(t, repo)
	require.NoError(t, owner.Unlock(ctx, testWallet))
	saved, err := owner.SaveEntry(ctx, "только для владельца")
	require.NoError(t, err)

	// подкладываем блоб владельца под другой аккаунт
	stolen, err := repo.Load(ctx, testWallet)
	require.NoError(t, err)
	otherWallet := "0xBBBB000000000000000000000000000000000002"
	require.NoError(t, repo.Save(ctx, otherWallet, stolen))

	thief := newIntegrationDiarySvc(t, repo)
	require.NoError(t, thief.Unlock(ctx, otherWallet))

	entries := thief.Entries()
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Plaintext, "чужой ключ не расшифровывает запись")

	result := thief.Reveal(saved.ID)
	assert.False(t, result.Valid)
	assert.Equal(t, crypto.ReasonUndecryptable, result.Reason)
}

func TestIntegration_TamperedEntryFailsIntegrityCheck(t *testing.T) {
	repo := store.NewMemoryEntryRepository()
	ctx := context.Background()

	svc := newIntegrationDiarySvc(t, repo)
	require.NoError(t, svc.Unlock(ctx, testWallet))
	saved, err := svc.SaveEntry(ctx, "неизменный текст")
	require.NoError(t, err)

	// портим сохранённый хеш напрямую в хранилище
	stored, err := repo.Load(ctx, testWallet)
	require.NoError(t, err)
	stored[0].Hash = "0000000000000000000000000000000000000000000000000000000000000000"
	require.NoError(t, repo.Save(ctx, testWallet, stored))

	reopened := newIntegrationDiarySvc(t, repo)
	require.NoError(t, reopened.Unlock(ctx, testWallet))

	result := reopened.Reveal(saved.ID)
	assert.False(t, result.Valid)
	assert.Equal(t, crypto.ReasonHashMismatch, result.Reason)
}

func TestIntegration_DeletePersistsAcrossReload(t *testing.T) {
	repo := store.NewMemoryEntryRepository()
	ctx := context.Background()

	svc := newIntegrationDiarySvc(t, repo)
	require.NoError(t, svc.Unlock(ctx, testWallet))

	first, err := svc.SaveEntry(ctx, "останется")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.SaveEntry(ctx, "удалится")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(ctx, second.ID))

	reopened := newIntegrationDiarySvc(t, repo)
	require.NoError(t, reopened.Unlock(ctx, testWallet))

	entries := reopened.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, "останется", entries[0].Plaintext)
}
