//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/inamate/tikzgo/internal/document"
	"github.com/inamate/tikzgo/internal/intersect"
	"github.com/inamate/tikzgo/internal/picture"
)

var (
	session = picture.NewSession()
	current *picture.Picture
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("loadDocument", js.FuncOf(loadDocument))
	api.Set("loadSampleDocument", js.FuncOf(loadSampleDocument))
	api.Set("reset", js.FuncOf(reset))

	api.Set("render", js.FuncOf(render))
	api.Set("getBounds", js.FuncOf(getBounds))
	api.Set("intersect", js.FuncOf(intersectItems))

	js.Global().Set("tikzgo", api)
	js.Global().Set("tikzgoWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func errorValue(err error) js.Value {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing document JSON"})
	}

	doc, err := document.Parse([]byte(args[0].String()))
	if err != nil {
		return errorValue(err)
	}
	pic, err := document.Build(doc, session)
	if err != nil {
		return errorValue(err)
	}
	current = pic

	return js.ValueOf(map[string]interface{}{"ok": true, "id": pic.ID()})
}

func loadSampleDocument(this js.Value, args []js.Value) interface{} {
	pic, err := document.Build(document.NewSampleDocument(), session)
	if err != nil {
		return errorValue(err)
	}
	current = pic
	return js.ValueOf(map[string]interface{}{"ok": true, "id": pic.ID()})
}

func reset(this js.Value, args []js.Value) interface{} {
	session.Reset()
	current = nil
	return nil
}

func render(this js.Value, args []js.Value) interface{} {
	if current == nil {
		return js.ValueOf("")
	}
	return js.ValueOf(current.Code())
}

func getBounds(this js.Value, args []js.Value) interface{} {
	if current == nil {
		return js.ValueOf("null")
	}
	b := current.Bounds()
	data, _ := json.Marshal(map[string]float64{
		"x": b.LLx, "y": b.LLy, "width": b.URx - b.LLx, "height": b.URy - b.LLy,
	})
	return js.ValueOf(string(data))
}

// intersectItems takes two item JSON strings and returns the intersection
// points as a JSON array of [x, y] pairs.
func intersectItems(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf(map[string]interface{}{"error": "want two item JSON strings"})
	}

	a, err := document.ParseItem([]byte(args[0].String()))
	if err != nil {
		return errorValue(err)
	}
	b, err := document.ParseItem([]byte(args[1].String()))
	if err != nil {
		return errorValue(err)
	}
	sa, err := document.NewShape(a)
	if err != nil {
		return errorValue(err)
	}
	sb, err := document.NewShape(b)
	if err != nil {
		return errorValue(err)
	}
	pts, err := intersect.Shapes(sa, sb)
	if err != nil {
		return errorValue(err)
	}

	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p.X, p.Y}
	}
	data, _ := json.Marshal(out)
	return js.ValueOf(string(data))
}
