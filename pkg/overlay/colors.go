package overlay

import "strings"

// defaultColor is used for any class the table does not know. Unknown
// classes are not an error; they just render white.
const defaultColor = "#FFFFFF"

// classColors maps every class the detection models emit to its display
// color. The table is read-only after process start; tooth positions use the
// universal numbering system (1-32).
var classColors = map[string]string{
	"Caries":                 "#008080",
	"Deep Caries":            "#006666",
	"Secondary Caries":       "#20B2AA",
	"Crown":                  "#FFD700",
	"Ceramic Crown":          "#FFE4B5",
	"Gold Crown":             "#DAA520",
	"Bridge":                 "#FF8C00",
	"Filling":                "#4682B4",
	"Amalgam Filling":        "#708090",
	"Composite Filling":      "#87CEEB",
	"Implant":                "#9370DB",
	"Post":                   "#8A2BE2",
	"Veneer":                 "#DDA0DD",
	"Root Canal Treatment":   "#DC143C",
	"Root Canal Filling":     "#B22222",
	"Retained Root":          "#CD5C5C",
	"Periapical Lesion":      "#FF4500",
	"Periapical Radiolucency": "#FF6347",
	"Abscess":                "#FF0000",
	"Cyst":                   "#FF69B4",
	"Granuloma":              "#C71585",
	"Bone Loss":              "#A0522D",
	"Horizontal Bone Loss":   "#8B4513",
	"Vertical Bone Loss":     "#D2691E",
	"Calculus":               "#BDB76B",
	"Periodontitis":          "#9ACD32",
	"Pulpitis":               "#E9967A",
	"Fracture":               "#00CED1",
	"Root Fracture":          "#48D1CC",
	"Impacted Tooth":         "#7FFF00",
	"Partially Impacted":     "#ADFF2F",
	"Missing Tooth":          "#696969",
	"Supernumerary":          "#BA55D3",
	"Wisdom Tooth":           "#32CD32",
	"Primary Tooth":          "#98FB98",
	"Attrition":              "#F4A460",
	"Abrasion":               "#DEB887",
	"Erosion":                "#D2B48C",
	"Malocclusion":           "#5F9EA0",
	"Orthodontic Appliance":  "#00BFFF",
	"Orthodontic Bracket":    "#1E90FF",
	"Mandibular Canal":       "#6495ED",
	"Maxillary Sinus":        "#4169E1",
	"TMJ":                    "#0000CD",
	"Enamel":                 "#F0F8FF",
	"Dentin":                 "#FAEBD7",
	"Pulp":                   "#FFB6C1",
	"Root":                   "#F5DEB3",
	"1":                      "#FF7F50",
	"2":                      "#FFA07A",
	"3":                      "#FA8072",
	"4":                      "#E9967A",
	"5":                      "#F08080",
	"6":                      "#CD5C5C",
	"7":                      "#FFC0CB",
	"8":                      "#FFB6C1",
	"9":                      "#FF69B4",
	"10":                     "#DB7093",
	"11":                     "#FFA500",
	"12":                     "#FF8C00",
	"13":                     "#FFDAB9",
	"14":                     "#EEE8AA",
	"15":                     "#F0E68C",
	"16":                     "#BDB76B",
	"17":                     "#E6E6FA",
	"18":                     "#D8BFD8",
	"19":                     "#DDA0DD",
	"20":                     "#EE82EE",
	"21":                     "#DA70D6",
	"22":                     "#BA55D3",
	"23":                     "#9932CC",
	"24":                     "#8B008B",
	"25":                     "#ADFF2F",
	"26":                     "#7FFF00",
	"27":                     "#7CFC00",
	"28":                     "#00FF7F",
	"29":                     "#3CB371",
	"30":                     "#2E8B57",
	"31":                     "#66CDAA",
	"32":                     "#8FBC8F",
}

// ResolveColors builds the per-request class to color mapping for the given
// set of class names.
func ResolveColors(classNames []string) map[string]string {
	colors := make(map[string]string, len(classNames))
	for _, name := range classNames {
		if hex, ok := classColors[name]; ok {
			colors[name] = hex
		} else {
			colors[name] = defaultColor
		}
	}
	return colors
}

// HexToBGR converts "#RRGGBB" into the blue-green-red channel order used by
// downstream raster tooling. It is a digit-pair reinterpretation only.
func HexToBGR(hex string) (uint8, uint8, uint8) {
	r, g, b := hexRGB(hex)
	return b, g, r
}

func hexRGB(hex string) (uint8, uint8, uint8) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 255, 255, 255
	}
	return hexByte(s[0:2]), hexByte(s[2:4]), hexByte(s[4:6])
}

func hexByte(s string) uint8 {
	var v uint8
	for i := 0; i < 2; i++ {
		v <<= 4
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v |= c - '0'
		case c >= 'a' && c <= 'f':
			v |= c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v |= c - 'A' + 10
		}
	}
	return v
}
