// Package preview describes the inline 3D previewer: the fixed camera,
// lighting, contact shadow and orbit constraints applied to a product model,
// and the slow idle sway that runs independently of user interaction.
//
// Rendering itself is delegated to a web component loaded by the browser. The
// component is described by a Viewer value built once at start-up and passed
// to the views that need it; nothing is registered globally. Attributes maps a
// Config onto the element attributes the component understands.
//
// # Usage
//
//	cfg := preview.Default()
//	viewer := preview.DefaultViewer()
//
//	for _, a := range cfg.Attributes("/assets/sofa.glb") {
//		// render a.Name="a.Value" on <model-viewer>
//	}
//
// Scene load failures are not handled: the loading indicator simply stays
// visible.
package preview
