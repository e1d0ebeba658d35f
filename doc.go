// Package meshcat is a client for the meshcat 3D visualization server.
//
// A Visualizer mirrors a tree of named objects into an external viewer
// process: geometries, transforms, materials, and properties are addressed
// by slash-separated paths and updated with explicit commands. Commands are
// encoded in the meshcat wire format (msgpack) and delivered, in order, over
// a persistent connection — ZMQ to a meshcat-server bridge or a WebSocket
// straight to a viewer.
//
//	v, err := meshcat.New(meshcat.DefaultEndpoint)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer v.Close()
//
//	ctx := context.Background()
//	v.SetObject(ctx, "/box", geometry.NewObject(
//		geometry.WithGeometry(geometry.NewBox(0.5, 0.5, 0.5)),
//		geometry.WithMaterial(geometry.NewMaterial(geometry.WithColor(0xff00ff))),
//	))
//	v.SetTransform(ctx, "/box", pose.Translation(0, 1, 0))
//
// Rendering is owned entirely by the viewer; this package only builds and
// ships the scene-graph commands.
package meshcat
