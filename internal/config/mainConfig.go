package config

type Config struct {
	Application Application `yaml:"Application" env:"APP" flag:""`
	Server      Server      `yaml:"Server"`
	Scratch     Scratch     `yaml:"Scratch"`
	TikTok      TikTok      `yaml:"TikTok" env:"TIKTOK" flag:"tiktok"`
	Transcoder  Transcoder  `yaml:"Transcoder"`
	Redis       Redis       `yaml:"Redis"`
	Telegram    Telegram    `yaml:"Telegram" env:"TG" flag:"tg"`
}

type Application struct {
	LogLevel        string   `yaml:"LogLevel" env:"LOGLEVEL"`
	LogFormat       string   `yaml:"LogFormat" env:"LOGFORMAT" cli:"optional" usage:"text или json"`
	ProxyURL        string   `yaml:"ProxyURL" env:"PROXY_URL" flag:"proxy-url" cli:"optional" usage:"Прокси для отправки запросов"`
	UpstreamTimeout Duration `yaml:"UpstreamTimeout" usage:"Лимит на запрос к YouTube или зеркалу TikTok"`
}

type Server struct {
	Listen             string   `yaml:"Listen" usage:"Адрес HTTP сервера"`
	Concurrency        int      `yaml:"Concurrency" cli:"optional" usage:"Максимум одновременных соединений, 0 - по умолчанию fasthttp"`
	ReadTimeout        Duration `yaml:"ReadTimeout"`
	WriteTimeout       Duration `yaml:"WriteTimeout"`
	MaxRequestBodySize int      `yaml:"MaxRequestBodySize" cli:"optional"`
}

type Scratch struct {
	Dir           string   `yaml:"Dir" usage:"Каталог для временных файлов"`
	SweepInterval Duration `yaml:"SweepInterval" cli:"optional" usage:"Период очистки брошенных файлов, 0 - не чистить"`
	OrphanTTL     Duration `yaml:"OrphanTTL" cli:"optional"`
}

type TikTok struct {
	APIURL string `yaml:"APIURL" env:"API_URL" flag:"api-url" cli:"optional" usage:"Зеркало tikwm"`
}

type Transcoder struct {
	FFmpegPath string `yaml:"FFmpegPath" env:"FFMPEG_PATH" flag:"ffmpeg-path" cli:"optional" usage:"Путь до ffmpeg, пусто - mp3 без перекодирования"`
}

type Redis struct {
	Address  string `yaml:"Address" cli:"optional" usage:"Redis для общих счётчиков, пусто - считать в памяти"`
	Password string `yaml:"Password" cli:"optional"`
	DB       int    `yaml:"DB" env:"DB" flag:"db" cli:"optional"`
}

type Telegram struct {
	Token         string `yaml:"Token" env:"BOT_TOKEN" flag:"bot-token" cli:"optional" usage:"Токен телеграм бота, пусто - бот выключен"`
	MaxUploadSize int64  `yaml:"MaxUploadSize" cli:"optional" usage:"Лимит размера файла для отправки ботом"`
}
