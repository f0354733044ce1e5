package catalog

type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Vehicle struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Year        int      `json:"year"`
	Price       string   `json:"price"`
	PriceNum    int64    `json:"priceNum"`
	Type        string   `json:"type"`
	Condition   string   `json:"condition"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Gallery     []string `json:"gallery"`
	ViewerURL   string   `json:"sketchfabUrl,omitempty"`
	Specs       []Spec   `json:"specs"`
	Features    []string `json:"features"`
}

type Brand struct {
	Name    string `json:"name"`
	IconURL string `json:"iconUrl"`
}

type Review struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Role      string `json:"role"`
	Company   string `json:"company"`
	Avatar    string `json:"avatar"`
	Rating    int    `json:"rating"`
	Sentiment string `json:"sentiment"`
	Verified  bool   `json:"verified"`
	Highlight string `json:"highlight"`
	Text      string `json:"text"`
}

type EngineeringStat struct {
	ID          string  `json:"id"`
	IconSVG     string  `json:"iconSvg"`
	Value       float64 `json:"value"`
	Suffix      string  `json:"suffix"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
}

type StoryStep struct {
	ID          string `json:"id"`
	Image       string `json:"image"`
	Number      string `json:"number"`
	Label       string `json:"label"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
