package crypto

import "github.com/MKhiriev/go-movie-browser/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher отвечает за хеширование паролей локальных пользователей.
// Он не знает ничего о базе данных или интерфейсе.
// Его единственная задача — превратить пароль в учётную строку и проверить совпадение.
//
// Схема работы:
//
//	salt          = GenerateSalt()                 (Шаг 1)
//	"salt:digest" = HashWithSalt(password, salt)   (Шаг 2)
//	ok            = Matches(password, credential)  (проверка)
type PasswordHasher interface {
	// GenerateSalt генерирует случайную соль (32 байта / 256 бит)
	// и возвращает её в hex-кодировке. Соль не является секретом —
	// она хранится в базе открыто, слева от двоеточия.
	// Шаг 1.
	GenerateSalt() (string, error)

	// HashWithSalt хеширует пароль с заданной солью:
	// SHA-256(password + salt) в нижнем hex-регистре.
	// Детерминирован — по нему же проверяется пароль при входе.
	// Шаг 2.
	HashWithSalt(password string, salt string) string

	// HashPassword хеширует пароль со свежей случайной солью и возвращает
	// полную учётную строку вида "salt:digest". Каждый вызов даёт новую соль.
	HashPassword(password string) (string, error)

	// Matches reports whether password matches the parsed stored credential.
	// Salted credentials are recomputed as SHA-256(password + salt), legacy
	// bare digests as SHA-256(password). Anything else never matches.
	Matches(password string, credential models.Credential) bool
}
