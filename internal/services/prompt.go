package services

import (
	"math-solver-api/internal/adapters/completion"
)

// SystemPrompt instructs the model to act as a Russian-speaking math tutor
// that answers in four parts: analysis, method, worked steps, final answer.
const SystemPrompt = `Ты YaSentAI - математический ассистент. Решай задачи пошагово на русском языке.

Формат ответа:
1. Анализ задачи (что дано, что нужно найти)
2. Метод решения
3. Пошаговое решение с объяснениями
4. Финальный ответ

Используй понятный язык, показывай промежуточные вычисления.`

// buildMessages returns the two-message conversation sent for a problem
func buildMessages(problem string) []completion.Message {
	return []completion.Message{
		{Role: completion.RoleSystem, Content: SystemPrompt},
		{Role: completion.RoleUser, Content: problem},
	}
}
