package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/operator"
	repo "travel-backoffice/internal/operator/repository"
)

const minPasswordLen = 8

// Register creates the first operator. The password is stored as a bcrypt hash.
func (uc *implUseCase) Register(ctx context.Context, input operator.RegisterInput) (operator.RegisterOutput, error) {
	username := strings.TrimSpace(input.Username)
	if n := utf8.RuneCountInString(username); n < 3 || n > 64 {
		return operator.RegisterOutput{}, operator.ErrInvalidUsername
	}
	if utf8.RuneCountInString(input.Password) < minPasswordLen {
		return operator.RegisterOutput{}, operator.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.hashCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GenerateFromPassword: %v", err)
		return operator.RegisterOutput{}, err
	}

	op, err := uc.repo.CreateFirstOperator(ctx, repo.CreateOperatorOptions{
		ID:           uc.newID(),
		Username:     username,
		PasswordHash: string(hash),
	})
	if errors.Is(err, repo.ErrNotFirst) {
		return operator.RegisterOutput{}, operator.ErrRegistrationClosed
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateFirstOperator: %v", err)
		return operator.RegisterOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Register: operator %s registered", op.Username)
	return operator.RegisterOutput{Operator: op}, nil
}

// Login checks the credentials and issues a token.
func (uc *implUseCase) Login(ctx context.Context, input operator.LoginInput) (operator.LoginOutput, error) {
	op, err := uc.repo.GetOneOperator(ctx, repo.GetOneOperatorOptions{Username: strings.TrimSpace(input.Username)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneOperator: %v", err)
		return operator.LoginOutput{}, err
	}
	if op.ID == "" {
		return operator.LoginOutput{}, operator.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(input.Password)) != nil {
		return operator.LoginOutput{}, operator.ErrInvalidCredentials
	}

	token, err := uc.jwtManager.Generate(model.Scope{OperatorID: op.ID, Username: op.Username})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login Generate: %v", err)
		return operator.LoginOutput{}, err
	}
	return operator.LoginOutput{Token: token, Operator: op}, nil
}

// Me returns the operator behind sc.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (operator.Operator, error) {
	op, err := uc.repo.GetOneOperator(ctx, repo.GetOneOperatorOptions{ID: sc.OperatorID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneOperator: %v", err)
		return operator.Operator{}, err
	}
	if op.ID == "" {
		return operator.Operator{}, operator.ErrOperatorNotFound
	}
	return op, nil
}
