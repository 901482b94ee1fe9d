package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"siteapi/models"
	"siteapi/services"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	projectService *services.ProjectService
	mediaService   *services.MediaService
	hubService     *services.HubService
}

func NewProjectController(projectService *services.ProjectService, mediaService *services.MediaService, hubService *services.HubService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		mediaService:   mediaService,
		hubService:     hubService,
	}
}

// CreateProject accepts either a JSON body (image paths already uploaded via
// UploadImage) or a multipart form with a "data" JSON field plus "images"
// files. Multipart uploads are transcoded and attached before the document
// insert; if the insert fails the files are cleaned up again.
func (pc *ProjectController) CreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	var uploadedPaths []string

	if isMultipart(c) {
		paths, err := pc.bindMultipart(c, &req)
		if err != nil {
			pc.cleanupUploads(paths)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		uploadedPaths = paths
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := pc.projectService.CreateProject(c.Request.Context(), &req, uploadedPaths)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project: " + err.Error()})
		return
	}

	pc.hubService.BroadcastEvent("project_created", project)

	c.JSON(http.StatusCreated, gin.H{"data": project})
}

// ListProjects returns projects with optional published filter
func (pc *ProjectController) ListProjects(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}

	q := models.ProjectListQuery{Skip: skip, Limit: limit}
	if published := c.Query("published"); published != "" {
		val := published == "true"
		q.Published = &val
	}

	projects, err := pc.projectService.ListProjects(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": projects,
		"pagination": gin.H{
			"skip":  skip,
			"limit": limit,
			"count": len(projects),
		},
	})
}

// GetProject returns a single project by id
func (pc *ProjectController) GetProject(c *gin.Context) {
	project, err := pc.projectService.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": project})
}

// UpdateProject applies a partial update; multipart bodies may carry new
// image files which are appended to the project's image list.
func (pc *ProjectController) UpdateProject(c *gin.Context) {
	var req models.UpdateProjectRequest
	var uploadedPaths []string

	if isMultipart(c) {
		paths, err := pc.bindMultipartUpdate(c, &req)
		if err != nil {
			pc.cleanupUploads(paths)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		uploadedPaths = paths
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := pc.projectService.UpdateProject(c.Request.Context(), c.Param("id"), &req, uploadedPaths)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	pc.hubService.BroadcastEvent("project_updated", project)

	c.JSON(http.StatusOK, gin.H{"data": project})
}

// DeleteProject removes a project document and its image files (best effort)
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	id := c.Param("id")
	if err := pc.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}

	pc.hubService.BroadcastEvent("project_deleted", gin.H{"id": id})

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// UploadImage transcodes and stores a single project image
func (pc *ProjectController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	data, err := readUpload(fileHeader, pc.mediaService.MaxUploadSize())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := pc.mediaService.Upload(data, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (pc *ProjectController) bindMultipart(c *gin.Context, req *models.CreateProjectRequest) ([]string, error) {
	if data := c.PostForm("data"); data != "" {
		if err := json.Unmarshal([]byte(data), req); err != nil {
			return nil, err
		}
	}

	images, paths, err := pc.uploadFormImages(c)
	if err != nil {
		return paths, err
	}
	req.Images = append(req.Images, images...)
	return paths, nil
}

func (pc *ProjectController) bindMultipartUpdate(c *gin.Context, req *models.UpdateProjectRequest) ([]string, error) {
	if data := c.PostForm("data"); data != "" {
		if err := json.Unmarshal([]byte(data), req); err != nil {
			return nil, err
		}
	}

	images, paths, err := pc.uploadFormImages(c)
	if err != nil {
		return paths, err
	}
	req.AddImages = append(req.AddImages, images...)
	return paths, nil
}

// uploadFormImages stores every "images" file in the form, pairing each with
// its "image_descriptions" entry by position.
func (pc *ProjectController) uploadFormImages(c *gin.Context) ([]models.ProjectImage, []string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, err
	}

	descriptions := form.Value["image_descriptions"]

	var images []models.ProjectImage
	var paths []string
	for i, fileHeader := range form.File["images"] {
		data, err := readUpload(fileHeader, pc.mediaService.MaxUploadSize())
		if err != nil {
			return images, paths, err
		}

		result, err := pc.mediaService.Upload(data, fileHeader.Filename)
		if err != nil {
			return images, paths, err
		}

		description := ""
		if i < len(descriptions) {
			description = descriptions[i]
		}

		images = append(images, models.ProjectImage{Image: result.Path, Description: description})
		paths = append(paths, result.Path)
	}
	return images, paths, nil
}

// cleanupUploads removes files stored before a request failed partway
// through its multipart form.
func (pc *ProjectController) cleanupUploads(paths []string) {
	for _, path := range paths {
		pc.mediaService.Delete(path)
	}
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/")
}

func readUpload(fileHeader *multipart.FileHeader, maxSize int64) ([]byte, error) {
	if fileHeader.Size > maxSize {
		return nil, errors.New("file too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(io.LimitReader(file, maxSize))
}
