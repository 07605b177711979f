package weather

import "regexp"

type conditionLabel struct {
	Condition   string
	Description string
}

// weatherCodes maps Open-Meteo WMO weather codes to Japanese labels.
var weatherCodes = map[int]conditionLabel{
	0:  {"晴れ", "快晴"},
	1:  {"晴れ", "ほぼ晴れ"},
	2:  {"曇り", "一部曇り"},
	3:  {"曇り", "曇り"},
	45: {"霧", "霧"},
	48: {"霧", "霧氷"},
	51: {"小雨", "小雨"},
	53: {"小雨", "霧雨"},
	55: {"雨", "強い霧雨"},
	61: {"雨", "小雨"},
	63: {"雨", "雨"},
	65: {"雨", "大雨"},
	71: {"雪", "小雪"},
	73: {"雪", "雪"},
	75: {"雪", "大雪"},
	77: {"雪", "みぞれ"},
	80: {"雨", "にわか雨"},
	81: {"雨", "強いにわか雨"},
	82: {"雨", "激しいにわか雨"},
	85: {"雪", "にわか雪"},
	86: {"雪", "強いにわか雪"},
	95: {"雷雨", "雷雨"},
	96: {"雷雨", "雷雨とひょう"},
	99: {"雷雨", "激しい雷雨とひょう"},
}

func labelForCode(code int) conditionLabel {
	if l, ok := weatherCodes[code]; ok {
		return l
	}
	return conditionLabel{"不明", "不明"}
}

// cityNames transliterates the closed set of Japanese city names the
// geocoding service cannot resolve in kana/kanji form.
var cityNames = map[string]string{
	"東京":  "Tokyo",
	"大阪":  "Osaka",
	"京都":  "Kyoto",
	"名古屋": "Nagoya",
	"札幌":  "Sapporo",
	"福岡":  "Fukuoka",
	"神戸":  "Kobe",
	"横浜":  "Yokohama",
	"仙台":  "Sendai",
	"広島":  "Hiroshima",
	"北九州": "Kitakyushu",
	"千葉":  "Chiba",
	"川崎":  "Kawasaki",
	"静岡":  "Shizuoka",
	"岡山":  "Okayama",
	"熊本":  "Kumamoto",
	"鹿児島": "Kagoshima",
	"那覇":  "Naha",
	"新潟":  "Niigata",
	"金沢":  "Kanazawa",
	"長野":  "Nagano",
	"富山":  "Toyama",
	"奈良":  "Nara",
	"和歌山": "Wakayama",
	"松山":  "Matsuyama",
	"高松":  "Takamatsu",
	"沖縄":  "Okinawa",
}

var japaneseScript = regexp.MustCompile(`[\x{3040}-\x{30FF}\x{4E00}-\x{9FAF}]`)

// transliterate converts a known Japanese city name to its romanized form
// and passes through anything already in the alphabet the geocoding
// service expects.
func transliterate(location string) string {
	if !japaneseScript.MatchString(location) {
		return location
	}
	if en, ok := cityNames[location]; ok {
		return en
	}
	return location
}
