package scene

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/gogpu/scenerender/geom"
)

// Scene is a decoded document.
type Scene struct {
	Version  int
	Source   string
	Elements []Element
	AppState AppState
	// Files maps file ids to embedded assets.
	Files map[string]File
}

// AppState carries the document-level settings used by rendering.
type AppState struct {
	ViewBackgroundColor string
}

// File is an embedded binary asset.
type File struct {
	ID       string
	MimeType string
	// DataURL holds the encoded bytes as a data: URL.
	DataURL string
}

type rawDocument struct {
	Type     string            `json:"type"`
	Version  int               `json:"version"`
	Source   string            `json:"source"`
	Elements []json.RawMessage `json:"elements"`
	AppState *struct {
		ViewBackgroundColor string `json:"viewBackgroundColor"`
	} `json:"appState"`
	Files map[string]rawFile `json:"files"`
}

type rawFile struct {
	ID       string `json:"id"`
	MimeType string `json:"mimeType"`
	DataURL  string `json:"dataURL"`
}

type rawElement struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	X               float64    `json:"x"`
	Y               float64    `json:"y"`
	Width           float64    `json:"width"`
	Height          float64    `json:"height"`
	Angle           *float64   `json:"angle"`
	StrokeColor     string     `json:"strokeColor"`
	BackgroundColor string     `json:"backgroundColor"`
	FillStyle       string     `json:"fillStyle"`
	StrokeStyle     string     `json:"strokeStyle"`
	StrokeWidth     *float64   `json:"strokeWidth"`
	Roughness       float64    `json:"roughness"`
	Seed            int64      `json:"seed"`
	Opacity         *float64   `json:"opacity"`
	IsDeleted       bool       `json:"isDeleted"`
	FrameID         *string    `json:"frameId"`
	Roundness       *rawRound  `json:"roundness"`
	Index           *string    `json:"index"`
	GroupIDs        []string   `json:"groupIds"`
	BoundElements   []rawBound `json:"boundElements"`
	Link            *string    `json:"link"`
	Locked          bool       `json:"locked"`

	Points           [][]float64 `json:"points"`
	Pressures        []float64   `json:"pressures"`
	SimulatePressure bool        `json:"simulatePressure"`
	Polygon          bool        `json:"polygon"`
	StartArrowhead   *string     `json:"startArrowhead"`
	EndArrowhead     *string     `json:"endArrowhead"`
	Elbowed          bool        `json:"elbowed"`

	Text          string    `json:"text"`
	FontSize      float64   `json:"fontSize"`
	FontFamily    int       `json:"fontFamily"`
	TextAlign     string    `json:"textAlign"`
	VerticalAlign string    `json:"verticalAlign"`
	LineHeight    float64   `json:"lineHeight"`
	ContainerID   *string   `json:"containerId"`
	FileID        *string   `json:"fileId"`
	Status        string    `json:"status"`
	Scale         []float64 `json:"scale"`
	Crop          *rawCrop  `json:"crop"`
	Name          *string   `json:"name"`
}

type rawRound struct {
	Type  int      `json:"type"`
	Value *float64 `json:"value"`
}

type rawBound struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type rawCrop struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	NaturalWidth  float64 `json:"naturalWidth"`
	NaturalHeight float64 `json:"naturalHeight"`
}

// Decode reads one scene document from r.
func Decode(r io.Reader) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FormatError{Reason: "read failed", Err: err}
	}
	return DecodeBytes(data)
}

// DecodeBytes parses one scene document. It fails with *FormatError when
// data is not JSON or lacks the document type marker. Elements with an
// unknown type are kept as *Unsupported.
func DecodeBytes(data []byte) (*Scene, error) {
	var doc rawDocument
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, &FormatError{Reason: "not parseable", Err: err}
	}
	if doc.Type != DocumentType {
		return nil, &FormatError{Reason: "missing or unexpected document type " + strconv.Quote(doc.Type)}
	}

	s := &Scene{
		Version:  doc.Version,
		Source:   doc.Source,
		Elements: make([]Element, 0, len(doc.Elements)),
		Files:    make(map[string]File, len(doc.Files)),
	}
	if doc.AppState != nil {
		s.AppState.ViewBackgroundColor = doc.AppState.ViewBackgroundColor
	}
	for id, f := range doc.Files {
		if f.ID == "" {
			f.ID = id
		}
		s.Files[id] = File{ID: f.ID, MimeType: f.MimeType, DataURL: f.DataURL}
	}
	for i, raw := range doc.Elements {
		var re rawElement
		if err := json.Unmarshal(raw, &re); err != nil {
			return nil, &FormatError{Reason: "element " + strconv.Itoa(i), Err: err}
		}
		s.Elements = append(s.Elements, re.element())
	}
	return s, nil
}

func (re *rawElement) base() Base {
	b := Base{
		ID:              re.ID,
		X:               re.X,
		Y:               re.Y,
		Width:           re.Width,
		Height:          re.Height,
		StrokeColor:     re.StrokeColor,
		BackgroundColor: re.BackgroundColor,
		FillStyle:       re.FillStyle,
		StrokeStyle:     re.StrokeStyle,
		StrokeWidth:     1,
		Roughness:       re.Roughness,
		Seed:            re.Seed,
		Opacity:         100,
		IsDeleted:       re.IsDeleted,
		FrameID:         deref(re.FrameID),
		Index:           deref(re.Index),
		GroupIDs:        re.GroupIDs,
		Link:            deref(re.Link),
		Locked:          re.Locked,
	}
	// absent angle is the same as zero
	if re.Angle != nil {
		b.Angle = *re.Angle
	}
	if re.StrokeWidth != nil {
		b.StrokeWidth = *re.StrokeWidth
	}
	if re.Opacity != nil {
		b.Opacity = *re.Opacity
	}
	if b.StrokeColor == "" {
		b.StrokeColor = "#1e1e1e"
	}
	if b.BackgroundColor == "" {
		b.BackgroundColor = "transparent"
	}
	if b.StrokeStyle == "" {
		b.StrokeStyle = "solid"
	}
	if re.Roundness != nil {
		r := &Roundness{Type: geom.RoundnessKind(re.Roundness.Type)}
		if re.Roundness.Value != nil {
			r.Value = *re.Roundness.Value
		}
		b.Roundness = r
	}
	for _, be := range re.BoundElements {
		b.BoundElements = append(b.BoundElements, BoundElement(be))
	}
	return b
}

func (re *rawElement) points() []geom.Point {
	pts := make([]geom.Point, 0, len(re.Points))
	for _, p := range re.Points {
		if len(p) < 2 {
			continue
		}
		pts = append(pts, geom.Pt(p[0], p[1]))
	}
	return pts
}

func (re *rawElement) element() Element {
	b := re.base()
	switch re.Type {
	case TypeRectangle:
		return &Rectangle{Base: b}
	case TypeDiamond:
		return &Diamond{Base: b}
	case TypeEllipse:
		return &Ellipse{Base: b}
	case TypeLine:
		return &Line{Base: b, Points: re.points(), Polygon: re.Polygon}
	case TypeArrow:
		a := &Arrow{Base: b, Points: re.points(), Elbowed: re.Elbowed}
		a.StartArrowhead = deref(re.StartArrowhead)
		a.EndArrowhead = deref(re.EndArrowhead)
		return a
	case TypeFreedraw:
		return &Freedraw{Base: b, Points: re.points(), Pressures: re.Pressures, SimulatePressure: re.SimulatePressure}
	case TypeText:
		return &Text{
			Base:          b,
			Text:          re.Text,
			FontSize:      orDefault(re.FontSize, 20),
			FontFamily:    re.FontFamily,
			TextAlign:     orString(re.TextAlign, geom.AlignLeft),
			VerticalAlign: orString(re.VerticalAlign, "top"),
			LineHeight:    orDefault(re.LineHeight, geom.DefaultLineHeight),
			ContainerID:   deref(re.ContainerID),
		}
	case TypeImage:
		img := &Image{Base: b, FileID: deref(re.FileID), Status: re.Status, Scale: [2]float64{1, 1}}
		if len(re.Scale) == 2 {
			img.Scale = [2]float64{re.Scale[0], re.Scale[1]}
		}
		if re.Crop != nil {
			c := geom.Crop(*re.Crop)
			img.Crop = &c
		}
		return img
	case TypeFrame, TypeMagicFrame:
		return &Frame{Base: b, Name: deref(re.Name)}
	case TypeEmbeddable, TypeIframe:
		return &Embeddable{Base: b}
	default:
		return &Unsupported{Base: b, Kind: re.Type}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
