package config

var DefaultConfig = Config{
	Color:    true,
	Unicode:  true,
	SaveFile: "",
	LogLevel: "info",
	Players: Players{
		White: "White",
		Black: "Black",
	},
}
