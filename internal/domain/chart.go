package domain

// Estruturas declarativas de gráficos no formato consumido pelo Plotly no
// cliente. Cada descritor é construído por requisição e nunca é mutado
// depois de montado.

type ChartTrace struct {
	Type         string       `json:"type"`
	X            interface{}  `json:"x"`
	Y            interface{}  `json:"y"`
	Mode         string       `json:"mode,omitempty"`
	Name         string       `json:"name,omitempty"`
	Fill         string       `json:"fill,omitempty"`
	Line         *ChartLine   `json:"line,omitempty"`
	Marker       *ChartMarker `json:"marker,omitempty"`
	Text         []string     `json:"text,omitempty"`
	TextPosition string       `json:"textposition,omitempty"`
}

type ChartLine struct {
	Color string `json:"color,omitempty"`
	Width int    `json:"width,omitempty"`
}

type ChartMarker struct {
	Size       int         `json:"size,omitempty"`
	Color      interface{} `json:"color,omitempty"`
	Colorscale string      `json:"colorscale,omitempty"`
	ShowScale  bool        `json:"showscale,omitempty"`
}

type ChartLayout struct {
	Title      string `json:"title,omitempty"`
	XAxisTitle string `json:"xaxis_title,omitempty"`
	YAxisTitle string `json:"yaxis_title,omitempty"`
	HoverMode  string `json:"hovermode,omitempty"`
	Template   string `json:"template,omitempty"`
	Height     int    `json:"height,omitempty"`
	BarMode    string `json:"barmode,omitempty"`
	ShowLegend bool   `json:"showlegend,omitempty"`
}

type ChartResponse struct {
	Data   []*ChartTrace `json:"data"`
	Layout *ChartLayout  `json:"layout"`
}

// ChartCollection reúne os quatro gráficos do dashboard, indexados pelo
// nome usado no cliente.
type ChartCollection struct {
	SalesChart    *ChartResponse `json:"sales_chart"`
	MarginChart   *ChartResponse `json:"margin_chart"`
	CategoryChart *ChartResponse `json:"category_chart"`
	UnitsChart    *ChartResponse `json:"units_chart"`
}
