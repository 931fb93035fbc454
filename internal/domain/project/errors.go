package project

import "errors"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectCodeTaken = errors.New("project code already exists")
)
