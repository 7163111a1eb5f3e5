// metrics exposes font measurement and single-glyph rasterization
// behind the [Provider] interface, keeping the rendering pipeline
// independent from the concrete font engine.
package metrics
