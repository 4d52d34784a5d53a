// Command shaderpackc is the shaderpack bundler CLI.
//
// Usage:
//
//	shaderpackc build -I shaders -o out sprite.sp.glsl
//	shaderpackc check sprite.sp.glsl
package main

func main() {
	Execute()
}
