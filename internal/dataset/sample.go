// Package dataset holds the built-in review corpus used by the CLI.
package dataset

import "github.com/trknhr/tonality/internal/model/entity"

// SampleReviews returns the labeled reviews the classifier is trained on.
// The neutral ones are included on purpose; training ignores them.
func SampleReviews() []entity.Example {
	return []entity.Example{
		{Text: "Отличный товар! Очень доволен покупкой.", Sentiment: entity.Positive},
		{Text: "Прекрасное качество, быстрая доставка.", Sentiment: entity.Positive},
		{Text: "Очень хороший продукт, рекомендую!", Sentiment: entity.Positive},
		{Text: "Отлично работает, спасибо!", Sentiment: entity.Positive},
		{Text: "Превосходное качество за свои деньги", Sentiment: entity.Positive},

		{Text: "Ужасное качество, не рекомендую", Sentiment: entity.Negative},
		{Text: "Очень плохой товар, деньги на ветер", Sentiment: entity.Negative},
		{Text: "Не работает, полный разочарование", Sentiment: entity.Negative},
		{Text: "Отвратительный сервис", Sentiment: entity.Negative},
		{Text: "Худшая покупка в моей жизни", Sentiment: entity.Negative},

		{Text: "Товар как товар, ничего особенного", Sentiment: entity.Neutral},
		{Text: "Обычный продукт за обычные деньги", Sentiment: entity.Neutral},
		{Text: "Соответствует описанию", Sentiment: entity.Neutral},
		{Text: "Нормально, но есть лучшие варианты", Sentiment: entity.Neutral},
	}
}

// SampleTexts returns the unlabeled reviews printed by the test run.
func SampleTexts() []string {
	return []string{
		"Отличный товар! Очень рад что купил",
		"Ужасное качество, никогда больше",
		"Нормальный товар за свои деньги",
		"Плохая работа, не доволен",
		"Хороший продукт, советую",
	}
}
