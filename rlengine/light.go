package rlengine

import (
	"image/color"
	"log"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs/component"
)

// maxLights must match MAX_LIGHTS in litFS.
const maxLights = 4

// Light kinds as the fragment shader sees them.
const (
	shaderDirectional = 0
	shaderPoint       = 1
	shaderSpot        = 2
)

const defaultSpotAngle = math32.Pi / 3

// lightUniforms is the packed light state for the lit shader. Ambient
// lights are summed into ambient; the rest fill the per-light arrays.
type lightUniforms struct {
	ambient [4]float32
	count   int
	kind    [maxLights]float32
	pos     [maxLights * 3]float32
	dir     [maxLights * 3]float32
	color   [maxLights * 4]float32
	cutoff  [maxLights]float32
	dropped int
}

// SetLights replaces the scene lights. Lights past the shader limit are
// dropped.
func (e *Engine) SetLights(lights []component.Light) {
	u := packLights(lights)
	if u.dropped > 0 && u.dropped != e.lights.dropped {
		log.Printf("rlengine: %d lights over the limit of %d, ignoring them", u.dropped, maxLights)
	}
	e.lights = u
}

func packLights(lights []component.Light) lightUniforms {
	var u lightUniforms
	for _, l := range lights {
		intensity := l.Intensity
		if intensity <= 0 {
			intensity = 1
		}
		c := rgb(l.Color)
		if l.Kind == component.LightAmbient {
			for i := 0; i < 3; i++ {
				u.ambient[i] += c[i] * intensity
			}
			continue
		}
		if u.count == maxLights {
			u.dropped++
			continue
		}
		i := u.count
		u.count++

		dir := l.Target.Sub(l.Position)
		if dir.Len() == 0 {
			dir = common.V3(0, -1, 0)
		}
		dir = dir.Normalize()
		switch l.Kind {
		case component.LightDirectional:
			u.kind[i] = shaderDirectional
		case component.LightSpot:
			u.kind[i] = shaderSpot
			angle := l.Angle
			if angle <= 0 {
				angle = defaultSpotAngle
			}
			u.cutoff[i] = math32.Cos(angle)
		default:
			u.kind[i] = shaderPoint
		}
		copy(u.pos[i*3:], []float32{l.Position.X, l.Position.Y, l.Position.Z})
		copy(u.dir[i*3:], []float32{dir.X, dir.Y, dir.Z})
		copy(u.color[i*4:], []float32{c[0], c[1], c[2], intensity})
	}
	return u
}

// rgb converts a color to linear 0..1 channels. An unset color is white.
func rgb(c color.NRGBA) [3]float32 {
	if c == (color.NRGBA{}) {
		return [3]float32{1, 1, 1}
	}
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

func (u lightUniforms) apply(shader rl.Shader, viewPos common.Vec3) {
	view := [3]float32{viewPos.X, viewPos.Y, viewPos.Z}
	ambient := [4]float32{u.ambient[0], u.ambient[1], u.ambient[2], 1}
	setUniform(shader, "viewPos", view[:], rl.ShaderUniformVec3, 1)
	setUniform(shader, "ambient", ambient[:], rl.ShaderUniformVec4, 1)
	setUniform(shader, "lightCount", []float32{float32(u.count)}, rl.ShaderUniformFloat, 1)
	if u.count == 0 {
		return
	}
	n := int32(u.count)
	setUniform(shader, "lightKind", u.kind[:u.count], rl.ShaderUniformFloat, n)
	setUniform(shader, "lightPos", u.pos[:u.count*3], rl.ShaderUniformVec3, n)
	setUniform(shader, "lightDir", u.dir[:u.count*3], rl.ShaderUniformVec3, n)
	setUniform(shader, "lightColor", u.color[:u.count*4], rl.ShaderUniformVec4, n)
	setUniform(shader, "lightCutoff", u.cutoff[:u.count], rl.ShaderUniformFloat, n)
}

// surface returns metalness and roughness clamped to [0, 1].
func surface(s component.Style) (float32, float32) {
	return common.Clamp(s.Metalness, 0, 1), common.Clamp(s.Roughness, 0, 1)
}

// setSurface uploads the per-body material terms.
func setSurface(shader rl.Shader, s component.Style, intensity float32) {
	metal, rough := surface(s)
	glow := emissiveRGB(s, intensity)
	setUniform(shader, "metalness", []float32{metal}, rl.ShaderUniformFloat, 1)
	setUniform(shader, "roughness", []float32{rough}, rl.ShaderUniformFloat, 1)
	setUniform(shader, "emissive", glow[:], rl.ShaderUniformVec4, 1)
}

func setUniform(shader rl.Shader, name string, value []float32, typ rl.ShaderUniformDataType, count int32) {
	if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
		rl.SetShaderValueV(shader, loc, value, typ, count)
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
#define MAX_LIGHTS 4
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec4 ambient;
uniform float lightCount;
uniform float lightKind[MAX_LIGHTS];
uniform vec3 lightPos[MAX_LIGHTS];
uniform vec3 lightDir[MAX_LIGHTS];
uniform vec4 lightColor[MAX_LIGHTS];
uniform float lightCutoff[MAX_LIGHTS];
uniform float metalness;
uniform float roughness;
uniform vec4 emissive;
out vec4 finalColor;
void main() {
  vec3 albedo = colDiffuse.rgb;
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  float shininess = mix(96.0, 4.0, roughness);
  float specStrength = 1.0 - roughness;
  vec3 specTint = mix(vec3(1.0), albedo, metalness);
  vec3 color = ambient.rgb * albedo;
  for (int i = 0; i < MAX_LIGHTS; i++) {
    if (float(i) >= lightCount) break;
    vec3 L;
    float atten = 1.0;
    if (lightKind[i] < 0.5) {
      L = normalize(-lightDir[i]);
    } else {
      vec3 toLight = lightPos[i] - fragPosition;
      float d = length(toLight);
      L = toLight / max(d, 0.0001);
      atten = 1.0 / (1.0 + 0.002 * d * d);
      if (lightKind[i] > 1.5) {
        float theta = dot(-L, normalize(lightDir[i]));
        atten *= smoothstep(lightCutoff[i], min(lightCutoff[i] + 0.05, 1.0), theta);
      }
    }
    float NdotL = max(dot(N, L), 0.0);
    vec3 H = normalize(L + V);
    float spec = pow(max(dot(N, H), 0.0), shininess) * specStrength;
    spec *= NdotL > 0.0 ? 1.0 : 0.0;
    vec3 radiance = lightColor[i].rgb * lightColor[i].a * atten;
    color += radiance * (albedo * NdotL * (1.0 - 0.5 * metalness) + specTint * spec);
  }
  finalColor = vec4(color + emissive.rgb, colDiffuse.a);
}
`
)
