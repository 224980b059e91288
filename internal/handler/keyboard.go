package handler

import (
	tele "gopkg.in/telebot.v3"
)

// Reply keyboard button labels
const (
	btnStartLearning = "Начать обучение ▶️"
	btnNextCard      = "Дальше ⏭"
	btnAddWord       = "Добавить слово ➕"
	btnDeleteWord    = "Удалить слово 🔙"
)

// cardMarkup builds the quiz keyboard: answer choices two per row,
// control buttons on the bottom row.
func cardMarkup(options []string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}

	var rows []tele.Row
	for i := 0; i < len(options); i += 2 {
		row := tele.Row{markup.Text(options[i])}
		if i+1 < len(options) {
			row = append(row, markup.Text(options[i+1]))
		}
		rows = append(rows, row)
	}

	rows = append(rows, markup.Row(
		markup.Text(btnNextCard),
		markup.Text(btnAddWord),
		markup.Text(btnDeleteWord),
	))

	markup.Reply(rows...)
	return markup
}

// nextMarkup is shown between cards
func nextMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(markup.Row(markup.Text(btnNextCard)))
	return markup
}

// addWordMarkup prompts a user with an empty practice set
func addWordMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(markup.Row(markup.Text(btnAddWord)))
	return markup
}

// welcomeMarkup is attached to the /start greeting
func welcomeMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(markup.Row(markup.Text(btnStartLearning)))
	return markup
}
