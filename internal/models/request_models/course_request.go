package request_models

type CourseOptions struct {
	Theme      string `json:"theme"`
	Duration   string `json:"duration"`
	Difficulty string `json:"difficulty"`
}

type GenerateCourseRequest struct {
	Region string `json:"region" binding:"required"`
	CourseOptions
}

type BatchCourseRequest struct {
	Regions []string `json:"regions" binding:"required,min=1,max=20"`
	CourseOptions
}

type ResolveImagesRequest struct {
	Regions []string `json:"regions" binding:"required,min=1,max=50"`
}
