package Identity

import (
	"Taller/Models"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LocalProvider keeps bcrypt hashes in the credenciales_locales table.
// Meant for development and tests; production wires the HTTPProvider.
type LocalProvider struct {
	DB *gorm.DB
}

func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{DB: db}
}

func (p *LocalProvider) SignIn(email, password string) error {
	var cred Models.CredencialLocal
	err := p.DB.Where("correo = ?", email).First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Models.ErrInvalidCredentials
	}
	if err != nil {
		return &Models.UpstreamError{Service: "identidad", Err: err}
	}
	if bcrypt.CompareHashAndPassword(cred.ClaveHash, []byte(password)) != nil {
		return Models.ErrInvalidCredentials
	}
	return nil
}

func (p *LocalProvider) SignUp(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return &Models.UpstreamError{Service: "identidad", Err: err}
	}
	cred := Models.CredencialLocal{Correo: email, ClaveHash: hash}
	if err := p.DB.Create(&cred).Error; err != nil {
		return &Models.UpstreamError{Service: "identidad", Err: err}
	}
	return nil
}

func (p *LocalProvider) DeleteIdentity(email string) error {
	return p.DB.Where("correo = ?", email).Delete(&Models.CredencialLocal{}).Error
}
