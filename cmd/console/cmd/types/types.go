package types

type contextKey string

// ConsoleAppKey - ключ контекста, под которым root-команда кладет
// собранное приложение для подкоманд.
const ConsoleAppKey contextKey = "console-app"
