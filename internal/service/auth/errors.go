package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("auth.service: invalid username or password")

	// ErrInvalidToken возвращается при некорректном или просроченном токене
	ErrInvalidToken = errors.New("auth.service: invalid token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth.service: internal error")
)
