//go:build js && wasm

// Browser binding for the steg package.
// Compiled with: GOOS=js GOARCH=wasm go build -o stegano.wasm ./clients/wasm/
package main

import (
	"syscall/js"

	"imgstegano/steg"
)

func main() {
	js.Global().Set("goEncodeText", js.FuncOf(encodeText))
	js.Global().Set("goDecodeText", js.FuncOf(decodeText))
	js.Global().Set("goCapacity", js.FuncOf(capacity))
	js.Global().Set("goReady", js.ValueOf(true))

	// Block forever (WASM must not exit).
	select {}
}

func bytesArg(v js.Value) []byte {
	buf := make([]byte, v.Get("length").Int())
	js.CopyBytesToGo(buf, v)
	return buf
}

func failure(err error) any {
	return js.ValueOf(map[string]any{"error": err.Error()})
}

// goEncodeText(imageBytes, extension, message) → {data, warning} | {error}
func encodeText(this js.Value, args []js.Value) any {
	if len(args) < 3 {
		return js.ValueOf(map[string]any{"error": "need imageBytes, extension, message"})
	}

	out, warn, err := steg.EncodeBytes(bytesArg(args[0]), args[1].String(), args[2].String())
	if err != nil {
		return failure(err)
	}

	data := js.Global().Get("Uint8Array").New(len(out))
	js.CopyBytesToJS(data, out)

	res := map[string]any{"data": data}
	if warn != nil {
		res["warning"] = warn.String()
	}
	return js.ValueOf(res)
}

// goDecodeText(imageBytes) → {message} | {error}
func decodeText(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf(map[string]any{"error": "need imageBytes"})
	}

	msg, err := steg.DecodeBytes(bytesArg(args[0]))
	if err != nil {
		return failure(err)
	}
	return js.ValueOf(map[string]any{"message": msg})
}

// goCapacity(imageBytes) → {capacity} | {error}
func capacity(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf(map[string]any{"error": "need imageBytes"})
	}

	n, err := steg.CapacityBytes(bytesArg(args[0]))
	if err != nil {
		return failure(err)
	}
	return js.ValueOf(map[string]any{"capacity": n})
}
