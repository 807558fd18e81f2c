package graphics

import (
	"image"
	"image/color"

	"voxel-devil/internal/profiling"
	"voxel-devil/internal/meshing"
	"voxel-devil/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	WinWidth  = 900
	WinHeight = 600
)

var (
	skyColor = mgl32.Vec3{0.5, 0.627, 0.878}
	fogNear  = float32(50)
	fogFar   = float32(75)
)

// HUDFrame is what the overlay shows this frame. Percentages are in [0,100].
type HUDFrame struct {
	DevilPct     float32
	DevilVisible bool
	PlayerPct    float32
	Banner       string
	Crosshair    bool
}

// Frame is everything the renderer draws for one frame
type Frame struct {
	View View
	Sun  Sun

	// Mesh is re-uploaded only when MeshVersion changes
	Mesh        []float32
	MeshVersion uint64

	Boxes []*scene.Box
	HUD   HUDFrame
}

type Renderer struct {
	blockShader *Shader
	boxShader   *Shader
	hudShader   *Shader
	camera      *Camera
	width       int
	height      int

	meshVAO uint32
	meshVBO uint32
	cubeVBO uint32
	boxVAO  uint32
	quadVAO uint32
	quadVBO uint32

	meshVertices int32
	meshVersion  uint64
	haveMesh     bool

	labelTex  uint32
	labelText string
	labelW    int
	labelH    int
}

// NewRenderer initialises GL state. It must run on the thread owning the GL context.
func NewRenderer(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	blockShader, err := NewShader("blocks.vert", "lit.frag")
	if err != nil {
		return nil, err
	}
	boxShader, err := NewShader("boxes.vert", "lit.frag")
	if err != nil {
		return nil, err
	}
	hudShader, err := NewShader("hud.vert", "hud.frag")
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		blockShader: blockShader,
		boxShader:   boxShader,
		hudShader:   hudShader,
		camera:      NewCamera(width, height),
		width:       width,
		height:      height,
	}
	r.setupMeshVAO()
	r.setupBoxVAO()
	r.setupQuadVAO()
	return r, nil
}

func (r *Renderer) setupMeshVAO() {
	stride := int32(meshing.VertexStride * 4)

	gl.GenVertexArrays(1, &r.meshVAO)
	gl.BindVertexArray(r.meshVAO)
	gl.GenBuffers(1, &r.meshVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.meshVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 6*4)
}

// setupBoxVAO uploads the unit cube shared by every scene box
func (r *Renderer) setupBoxVAO() {
	stride := int32(6 * 4)

	gl.GenVertexArrays(1, &r.boxVAO)
	gl.BindVertexArray(r.boxVAO)
	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(CubeVertices)*4, gl.Ptr(CubeVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
}

func (r *Renderer) setupQuadVAO() {
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)

	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
}

// SetViewport follows framebuffer resizes
func (r *Renderer) SetViewport(width, height int) {
	r.width, r.height = width, height
	r.camera.SetViewport(width, height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *Renderer) Render(f *Frame) {
	defer profiling.Track("render.total")()

	gl.ClearColor(skyColor.X(), skyColor.Y(), skyColor.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := f.View.Matrix()
	proj := r.camera.ProjectionMatrix()
	light := f.Sun.Direction()

	r.renderBlocks(f, view, proj, light)
	r.renderBoxes(f, view, proj, light)
	r.renderHUD(f.HUD)
}

func (r *Renderer) setLighting(s *Shader, view, proj mgl32.Mat4, light, eye mgl32.Vec3) {
	s.SetMatrix4("proj", &proj[0])
	s.SetMatrix4("view", &view[0])
	s.SetVector3("lightDir", light.X(), light.Y(), light.Z())
	s.SetVector3("cameraPos", eye.X(), eye.Y(), eye.Z())
	s.SetVector3("fogColor", skyColor.X(), skyColor.Y(), skyColor.Z())
	s.SetFloat("fogNear", fogNear)
	s.SetFloat("fogFar", fogFar)
}

func (r *Renderer) renderBlocks(f *Frame, view, proj mgl32.Mat4, light mgl32.Vec3) {
	defer profiling.Track("render.blocks")()

	if !r.haveMesh || f.MeshVersion != r.meshVersion {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.meshVBO)
		if len(f.Mesh) > 0 {
			gl.BufferData(gl.ARRAY_BUFFER, len(f.Mesh)*4, gl.Ptr(f.Mesh), gl.STATIC_DRAW)
		} else {
			gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		}
		r.meshVertices = int32(len(f.Mesh) / meshing.VertexStride)
		r.meshVersion = f.MeshVersion
		r.haveMesh = true
	}
	if r.meshVertices == 0 {
		return
	}

	r.blockShader.Use()
	r.setLighting(r.blockShader, view, proj, light, f.View.Eye)
	gl.BindVertexArray(r.meshVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, r.meshVertices)
}

func (r *Renderer) renderBoxes(f *Frame, view, proj mgl32.Mat4, light mgl32.Vec3) {
	if len(f.Boxes) == 0 {
		return
	}
	r.boxShader.Use()
	r.setLighting(r.boxShader, view, proj, light, f.View.Eye)
	gl.BindVertexArray(r.boxVAO)
	for _, b := range f.Boxes {
		if b.Disposed() {
			continue
		}
		model := b.Model()
		c := b.Spec().Color
		r.boxShader.SetMatrix4("model", &model[0])
		r.boxShader.SetVector3("color", c.X(), c.Y(), c.Z())
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(CubeVertices)/6))
	}
}

func (r *Renderer) renderHUD(h HUDFrame) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	defer func() {
		gl.Disable(gl.BLEND)
		gl.Enable(gl.DEPTH_TEST)
	}()

	r.hudShader.Use()
	r.hudShader.SetVector2("screen", float32(r.width), float32(r.height))
	r.hudShader.SetBool("textured", false)
	gl.BindVertexArray(r.quadVAO)

	const barW, barH, margin = 200, 16, 12
	w := float32(r.width)

	// player health, bottom left
	py := float32(r.height) - margin - barH
	r.drawRect(margin, py, barW, barH, mgl32.Vec4{0, 0, 0, 0.5})
	r.drawRect(margin, py, barW*h.PlayerPct/100, barH, mgl32.Vec4{0.2, 0.8, 0.2, 0.9})

	if h.DevilVisible {
		x := (w - barW) / 2
		r.drawRect(x, margin, barW, barH, mgl32.Vec4{0, 0, 0, 0.5})
		r.drawRect(x, margin, barW*h.DevilPct/100, barH, mgl32.Vec4{0.8, 0.1, 0.1, 0.9})
	}

	if h.Crosshair {
		cx, cy := w/2, float32(r.height)/2
		r.drawRect(cx-8, cy-1, 16, 2, mgl32.Vec4{1, 1, 1, 0.8})
		r.drawRect(cx-1, cy-8, 2, 16, mgl32.Vec4{1, 1, 1, 0.8})
	}

	if h.Banner != "" {
		r.ensureLabel(h.Banner)
		x := (w - float32(r.labelW)) / 2
		y := float32(r.height)/2 - float32(r.labelH) - 40
		r.hudShader.SetBool("textured", true)
		r.hudShader.SetInt("tex", 0)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.labelTex)
		r.drawRect(x, y, float32(r.labelW), float32(r.labelH), mgl32.Vec4{1, 1, 1, 1})
		r.hudShader.SetBool("textured", false)
	}
}

func (r *Renderer) drawRect(x, y, w, h float32, c mgl32.Vec4) {
	if w <= 0 || h <= 0 {
		return
	}
	r.hudShader.SetVector4("rect", x, y, w, h)
	r.hudShader.SetVector4("color", c.X(), c.Y(), c.Z(), c.W())
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(quadVertices)/2))
}

// ensureLabel uploads text as a texture unless it is already current
func (r *Renderer) ensureLabel(text string) {
	if text == r.labelText && r.labelTex != 0 {
		return
	}
	img := RasterizeLabel(text, color.RGBA{255, 240, 200, 255}, 3)
	if img == nil {
		return
	}
	if r.labelTex == 0 {
		gl.GenTextures(1, &r.labelTex)
	}
	uploadRGBA(r.labelTex, img)
	r.labelText = text
	r.labelW, r.labelH = img.Bounds().Dx(), img.Bounds().Dy()
}

func uploadRGBA(tex uint32, img *image.RGBA) {
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}

// Dispose frees GL resources
func (r *Renderer) Dispose() {
	r.blockShader.Delete()
	r.boxShader.Delete()
	r.hudShader.Delete()
	gl.DeleteVertexArrays(1, &r.meshVAO)
	gl.DeleteVertexArrays(1, &r.boxVAO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
	gl.DeleteBuffers(1, &r.cubeVBO)
	gl.DeleteBuffers(1, &r.meshVBO)
	gl.DeleteBuffers(1, &r.quadVBO)
	if r.labelTex != 0 {
		gl.DeleteTextures(1, &r.labelTex)
	}
}
