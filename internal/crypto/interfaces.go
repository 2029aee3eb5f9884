package crypto

import "github.com/Freeman45/encrypted-Diary/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/diary_cipher_mock.go -package=mock

// DiaryCipher отвечает за всю криптографию дневника на стороне клиента.
// Он не знает ничего о сети, базе данных или кошельке.
// Его единственная задача — превращать открытый текст в защищённые записи и обратно.
//
// Схема работы:
//
//	Key    = DeriveKey(walletAddress)            (Шаг 1)
//	Record = BuildRecord(text, address, Key)     (Шаг 2)
//	Blob   = Serialize(Record)                   (Шаг 3, перед сохранением)
//	Result = DecryptAndVerify(Record, Key)       (Шаг 4, при чтении)
type DiaryCipher interface {
	// DeriveKey выводит 256-битный ключ шифрования из адреса кошелька через Argon2id.
	// Адрес нормализуется к нижнему регистру, поэтому один и тот же аккаунт
	// всегда даёт один и тот же ключ. Ключ существует только в памяти клиента.
	// Шаг 1.
	DeriveKey(walletAddress string) []byte

	// Encrypt шифрует текст ключом через AES-256-GCM.
	// Результат — base64 от (Nonce + Ciphertext), его безопасно хранить где угодно.
	Encrypt(plaintext string, key []byte) (string, error)

	// Decrypt расшифровывает base64-блоб, созданный Encrypt.
	// Неверный ключ или повреждённый блоб дают ErrDecryption.
	Decrypt(ciphertext string, key []byte) (string, error)

	// Hash возвращает hex-представление SHA-256 от текста.
	// Хеш вычисляется до шифрования и хранится рядом с записью.
	Hash(text string) string

	// VerifyIntegrity сравнивает хеш текста с ожидаемым значением.
	VerifyIntegrity(text, expectedHash string) bool

	// BuildRecord собирает готовую к сохранению запись: шифрует текст,
	// считает хеш и проставляет отметку времени в миллисекундах.
	// Шаг 2.
	BuildRecord(plaintext, walletAddress string, key []byte) (*models.EncryptedDiaryEntry, error)

	// Serialize packs a record into its canonical JSON form for storage or
	// on-chain submission.
	Serialize(record *models.EncryptedDiaryEntry) (string, error)

	// Deserialize parses the canonical JSON form back into a record.
	// Returns ErrMalformedRecord when the payload is not a diary record.
	Deserialize(data string) (*models.EncryptedDiaryEntry, error)

	// DecryptAndVerify decrypts a record and checks the digest of the result
	// against the stored hash. It never returns an error: an undecryptable
	// or tampered record is reported through the result fields.
	DecryptAndVerify(record *models.EncryptedDiaryEntry, key []byte) models.RevealResult
}
