// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-model-viewer/internal/service"
	"github.com/MKhiriev/go-model-viewer/internal/store"
	"github.com/MKhiriev/go-model-viewer/internal/validators"
	"github.com/MKhiriev/go-model-viewer/internal/viewer"
)

// ErrUserQuit is returned when the user leaves the program with ctrl+c.
var ErrUserQuit = errors.New("user quit")

var errorMessages = []struct {
	err error
	msg string
}{
	{service.ErrInvalidCredentials, "Неверный email или пароль"},
	{store.ErrEmailAlreadyExists, "Email уже зарегистрирован"},
	{service.ErrTokenIsExpiredOrInvalid, "Сессия истекла, войдите снова"},
	{store.ErrModelNotFound, "Модель не найдена"},
	{service.ErrInvalidModelID, "Некорректный идентификатор модели"},
	{service.ErrAssetTooLarge, "Файл слишком большой"},
	{service.ErrAssetStorageDisabled, "Загрузка файлов отключена на сервере"},
	{store.ErrAssetNotFound, "Файл модели не найден"},
	{validators.ErrUnsupportedFormat, "Поддерживаются только .glb, .gltf и .obj"},
	{viewer.ErrUnsupportedFormat, "Поддерживаются только .glb, .gltf и .obj"},
	{viewer.ErrViewNameRequired, "Введите название вида"},
	{viewer.ErrReadOnlyModel, "Демо-модель доступна только для просмотра"},
	{viewer.ErrModelNotPersisted, "Модель ещё не сохранена на сервере"},
	{viewer.ErrNotPlaceholder, "Локальный файл можно открыть только для новой модели"},
	{service.ErrInvalidDataProvided, "Заполните все обязательные поля"},
}

// humanizeError turns client errors into a short user-facing message.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
