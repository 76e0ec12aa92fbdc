package opengl

// Default sources for the debug textured-quad program. The on-disk copies
// under assets/shaders take precedence when present so they can be
// hot-reloaded.

const DefaultDebugVertexShader = `#version 410 core

layout(location = 0) in vec2 a_vertex_xy;
layout(location = 1) in vec2 a_texcoor_st;

uniform mat4 u_movi_mat;
uniform mat4 u_proj_mat;

out vec2 v_texcoor_st;

void main() {
	gl_Position = u_proj_mat * u_movi_mat * vec4(a_vertex_xy, 0.0, 1.0);
	v_texcoor_st = a_texcoor_st;
}
`

const DefaultDebugFragmentShader = `#version 410 core

uniform sampler2D u_tex;

in vec2 v_texcoor_st;
out vec4 f_color_rgba;

void main() {
	f_color_rgba = texture(u_tex, v_texcoor_st);
}
`
