package usecase

import (
	"regexp"
)

// サインアップ入力の検証ルール。フロントエンドの同じルールと対になっており、
// フォームを迂回したリクエストもここで弾きます。
var (
	nameRe     = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRe    = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)
	passwordRe = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{4,10}$`)

	passwordUpperRe   = regexp.MustCompile(`[A-Z]`)
	passwordDigitRe   = regexp.MustCompile(`\d`)
	passwordSpecialRe = regexp.MustCompile(`[@$!%*?&]`)
)

// ValidateName は表示名が英字とスペースのみで構成されているか検証します。
// 失敗時はErrInvalidNameを返します。
func ValidateName(name string) error {
	if !nameRe.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// ValidateEmail はメールアドレスの形式を検証します。
// 失敗時はErrInvalidEmailを返します。
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword はパスワードが4〜10文字で、大文字・数字・記号を
// それぞれ1つ以上含むか検証します。失敗時はErrInvalidPasswordを返します。
func ValidatePassword(password string) error {
	if !passwordRe.MatchString(password) ||
		!passwordUpperRe.MatchString(password) ||
		!passwordDigitRe.MatchString(password) ||
		!passwordSpecialRe.MatchString(password) {
		return ErrInvalidPassword
	}
	return nil
}
