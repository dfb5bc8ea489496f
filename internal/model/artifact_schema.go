package model

import "github.com/abhisek/denguerisk/internal/validate"

// intArray matches the integer arrays of a tree.
var intArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "integer"},
}

// numberArray matches split_conditions and base_weights.
var numberArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "number"},
}

// ArtifactSchema describes the subset of the XGBoost JSON model format
// (Booster.save_model with a .json extension) the adapter reads.
var ArtifactSchema = &validate.Schema{
	Name: "xgboost-model",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"learner": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"feature_names": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"learner_model_param": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"base_score":  map[string]any{"type": "string"},
							"num_feature": map[string]any{"type": "string"},
							"num_class":   map[string]any{"type": "string"},
						},
						"required": []any{"base_score", "num_feature"},
					},
					"objective": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name": map[string]any{"type": "string"},
						},
						"required": []any{"name"},
					},
					"gradient_booster": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name": map[string]any{"type": "string"},
							"model": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"trees": map[string]any{
										"type":     "array",
										"minItems": 1,
										"items": map[string]any{
											"type": "object",
											"properties": map[string]any{
												"left_children":    intArray,
												"right_children":   intArray,
												"split_indices":    intArray,
												"split_conditions": numberArray,
												"split_type":       intArray,
												"default_left": map[string]any{
													"type": "array",
													"items": map[string]any{
														"type": []any{"integer", "boolean"},
													},
												},
											},
											"required": []any{"left_children", "right_children", "split_indices", "split_conditions", "default_left"},
										},
									},
								},
								"required": []any{"trees"},
							},
						},
						"required": []any{"model"},
					},
				},
				"required": []any{"learner_model_param", "objective", "gradient_booster"},
			},
		},
		"required": []any{"learner"},
	},
}
