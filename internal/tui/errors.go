// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package tui

import (
	"errors"
	"strings"

	"github.com/Freeman45/encrypted-Diary/internal/provider"
	"github.com/Freeman45/encrypted-Diary/internal/service"
)

// humanizeProviderError turns provider and service failures into the text
// shown in overlays and status lines. Sentinels get a dedicated message;
// raw transport errors are recognized by their typical substrings.
func humanizeProviderError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, provider.ErrConnectionRejected):
		return "Подключение отклонено в кошельке"
	case errors.Is(err, provider.ErrProviderUnavailable):
		return "Кошелёк-провайдер недоступен. Проверьте, что он запущен"
	case errors.Is(err, provider.ErrUnknownChain):
		return "Кошелёк не знает выбранную сеть"
	case errors.Is(err, provider.ErrCallReverted):
		return "Контракт отклонил операцию"
	case errors.Is(err, provider.ErrUnauthorized):
		return "Кошелёк не выдал доступ к аккаунтам"
	case errors.Is(err, service.ErrRemoteDisabled):
		return "Отправка в блокчейн выключена в настройках"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Кошелёк-провайдер недоступен. Проверьте, что он запущен"
	}

	return err.Error()
}

// saveErrorMessage maps entry validation failures to user-facing text.
func saveErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrEmptyEntry):
		return "Запись пуста. Нечего сохранять"
	case errors.Is(err, service.ErrNoAccount):
		return "Сначала подключите кошелёк"
	default:
		return "Ошибка сохранения: " + err.Error()
	}
}
