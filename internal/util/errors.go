package util

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrPermissionDenied = errors.New("permission denied")
	ErrExamNotFound     = errors.New("exam not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrResponseNotFound = errors.New("response not found")
	ErrDuplicateRollNo  = errors.New("a response with this roll number already exists for the exam")
	ErrEmptyAnswer      = errors.New("answer must have text or an image")
)
