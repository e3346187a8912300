package typography

// Font описывает подключаемое семейство шрифтов.
type Font struct {
	Key    string `json:"key"`
	Family string `json:"family"`
}

// LatinFonts — шрифты для латиницы, порядок совпадает с выпадающим списком админки.
var LatinFonts = []Font{
	{Key: "inter", Family: "Inter"},
	{Key: "poppins", Family: "Poppins"},
	{Key: "dmsans", Family: "DM Sans"},
	{Key: "playfair", Family: "Playfair Display"},
	{Key: "libre", Family: "Libre Baskerville"},
	{Key: "montserrat", Family: "Montserrat"},
	{Key: "manrope", Family: "Manrope"},
	{Key: "roboto", Family: "Roboto"},
	{Key: "space-grotesk", Family: "Space Grotesk"},
	{Key: "cormorant", Family: "Cormorant Garamond"},
}

// ArabicFonts — шрифты для арабского текста.
var ArabicFonts = []Font{
	{Key: "ibm", Family: "IBM Plex Sans Arabic"},
	{Key: "almarai", Family: "Almarai"},
	{Key: "changa", Family: "Changa"},
	{Key: "rubik", Family: "Rubik"},
	{Key: "noto-naskh", Family: "Noto Naskh Arabic"},
	{Key: "noto-kufi", Family: "Noto Kufi Arabic"},
	{Key: "cairo", Family: "Cairo"},
}

func findFont(fonts []Font, key string) (Font, bool) {
	for _, f := range fonts {
		if f.Key == key {
			return f, true
		}
	}
	return Font{}, false
}

// LatinFamily возвращает CSS семейство; неизвестный ключ даёт первый шрифт таблицы.
func LatinFamily(key string) string {
	if f, ok := findFont(LatinFonts, key); ok {
		return f.Family
	}
	return LatinFonts[0].Family
}

// ArabicFamily возвращает CSS семейство арабского шрифта.
func ArabicFamily(key string) string {
	if f, ok := findFont(ArabicFonts, key); ok {
		return f.Family
	}
	return ArabicFonts[0].Family
}
