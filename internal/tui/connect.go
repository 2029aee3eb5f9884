package tui

import (
	"github.com/Freeman45/encrypted-Diary/internal/config"
	"github.com/charmbracelet/bubbles/spinner"
)

type connectModel struct {
	providerURL string
	chain       config.ClientChain
	contract    config.ClientContract

	connecting bool
	spinner    spinner.Model
	errMsg     string
}

func newConnectModel(providerURL string, chain config.ClientChain, contract config.ClientContract) connectModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return connectModel{
		providerURL: providerURL,
		chain:       chain,
		contract:    contract,
		spinner:     s,
	}
}

func (m connectModel) View() string {
	out := "Дневник хранится зашифрованным. Ключ выводится из адреса\n"
	out += "кошелька, подключите его, чтобы прочитать свои записи.\n\n"
	out += "Провайдер : " + m.providerURL + "\n"
	out += "Сеть      : " + m.chain.Name + " (" + m.chain.ID + ")\n"
	out += "Контракт  : " + contractLine(m.contract) + "\n"

	switch {
	case m.connecting:
		out += "Статус    : " + m.spinner.View() + " Подключение...\n"
	case m.errMsg != "":
		out += "Статус    : " + invalidStyle.Render("Ошибка") + "\n\n"
		out += "Ошибка: " + m.errMsg + "\n"
		out += "Нажмите enter, чтобы попробовать ещё раз.\n"
	default:
		out += "Статус    : Отключено\n"
	}

	return renderPage(
		"ЛИЧНЫЙ ДНЕВНИК",
		out,
		"enter: подключить кошелёк │ v: о программе │ q: выход",
	)
}

// contractLine renders the on-chain persistence setting. Записи всегда
// хранятся локально, контракт лишь дублирует их в сеть.
func contractLine(contract config.ClientContract) string {
	if !contract.Enabled || contract.Address == "" {
		return "не настроен, записи хранятся только локально"
	}

	return contract.Address
}
