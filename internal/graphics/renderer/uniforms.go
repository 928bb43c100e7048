package renderer

import (
	"strconv"

	"shadow-demo/internal/config"
)

// Uniform names shared with the GLSL sources in assets/shaders.

var (
	shadowStages = []string{"vertex", "geometry", "fragment"}
	modelStages  = []string{"vertex", "fragment"}
)

const (
	uShadowModelMatrix = "modelMatrix"

	uModelMatrix      = "modelDetails.modelMatrix"
	uViewMatrix       = "modelDetails.viewMatrix"
	uProjectionMatrix = "modelDetails.projectionMatrix"
	uMVPMatrix        = "modelDetails.mvpMatrix"
	uTotalTime        = "timeDetails.totalTime"
	uDeltaTime        = "timeDetails.deltaTime"
	uAmbientFactor    = "ambientFactor"
	uSimpleLightCount = "simpleLightsCount"
	uCubeLightCount   = "cubeLightsCount"
	uDiffuseTexture   = "diffuseTexture"
)

func perStage(prefix string, stages []string, field string) []string {
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = prefix + "_" + s + field
	}
	return names
}

// shadowUniforms names the per-stage light inputs of the shadow programs.
type shadowUniforms struct {
	vpMatrixCount []string
	lightPosition []string
	nearPlane     []string
	farPlane      []string
	vpMatrices    [6][]string
}

func newShadowUniforms() shadowUniforms {
	u := shadowUniforms{
		vpMatrixCount: perStage("lightDetails", shadowStages, ".vpMatrixCount"),
		lightPosition: perStage("lightDetails", shadowStages, ".lightPosition"),
		nearPlane:     perStage("projectionDetails", shadowStages, ".nearPlane"),
		farPlane:      perStage("projectionDetails", shadowStages, ".farPlane"),
	}
	for i := range u.vpMatrices {
		u.vpMatrices[i] = perStage("lightDetails", shadowStages, ".vpMatrices["+strconv.Itoa(i)+"]")
	}
	return u
}

// slotUniforms names the inputs of one light slot of the main program.
type slotUniforms struct {
	position  []string
	vpMatrix  []string
	color     []string
	intensity []string
	mapWidth  []string
	mapHeight []string
	nearPlane []string
	farPlane  []string
	texture   string
}

func newSlotUniforms(kind string, i int) slotUniforms {
	prefix := kind + "LightDetails"
	idx := "[" + strconv.Itoa(i) + "]"
	field := func(name string) []string {
		return perStage(prefix, modelStages, idx+"."+name)
	}
	return slotUniforms{
		position:  field("lightPosition"),
		vpMatrix:  field("lightVpMatrix"),
		color:     field("lightColor"),
		intensity: field("lightIntensity"),
		mapWidth:  field("mapWidth"),
		mapHeight: field("mapHeight"),
		nearPlane: field("nearPlane"),
		farPlane:  field("farPlane"),
		texture:   kind + "LightTextures" + idx,
	}
}

var (
	shadowNames     = newShadowUniforms()
	simpleSlotNames = makeSlots("simple", config.MaxSimpleLights)
	cubeSlotNames   = makeSlots("cube", config.MaxCubeLights)
)

func makeSlots(kind string, n int) []slotUniforms {
	slots := make([]slotUniforms, n)
	for i := range slots {
		slots[i] = newSlotUniforms(kind, i)
	}
	return slots
}
