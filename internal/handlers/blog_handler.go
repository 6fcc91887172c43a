package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"travelblog/internal/middleware"
	"travelblog/internal/models"
	"travelblog/internal/store"
)

// ImageStore stores uploaded post images and returns their public URL.
type ImageStore interface {
	Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
}

// BlogHandler serves the blog post endpoints.
type BlogHandler struct {
	blogs  store.BlogStore
	images ImageStore
}

func NewBlogHandler(blogs store.BlogStore, images ImageStore) *BlogHandler {
	return &BlogHandler{blogs: blogs, images: images}
}

// List returns all posts, newest first. Public.
func (h *BlogHandler) List(c *fiber.Ctx) error {
	blogs, err := h.blogs.List(c.Context())
	if err != nil {
		logrus.WithError(err).Error("Blogs: list failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch blogs"})
	}
	return c.JSON(blogs)
}

type createBlogRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Create stores a post. Author name and email come from the verified token
// claims, never from the request body.
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var req createBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Title and content are required"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Title and content are required"})
	}

	claims := middleware.ClaimsFromCtx(c)
	blog := models.Blog{
		Title:   req.Title,
		Content: req.Content,
		Author:  claims.Name,
		Email:   claims.Email,
	}
	if err := h.blogs.Create(c.Context(), &blog); err != nil {
		logrus.WithError(err).Error("Blogs: insert failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating blog"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Blog created",
		"blog":    blog,
	})
}

// UploadImage attaches an image to a post. Only the author or an admin may
// do so.
func (h *BlogHandler) UploadImage(c *fiber.Ctx) error {
	id := c.Params("id")
	blog, err := h.blogs.FindByID(c.Context(), id)
	if err == store.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Blog not found"})
	}
	if err != nil {
		logrus.WithError(err).Error("Blogs: lookup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error uploading image"})
	}

	claims := middleware.ClaimsFromCtx(c)
	if blog.Email != claims.Email && claims.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Not authorized to update this blog"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Image file is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		logrus.WithError(err).Error("Blogs: failed to open uploaded image")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error uploading image"})
	}
	defer file.Close()

	objectName := fmt.Sprintf("%s_%s", id, fileHeader.Filename)
	url, err := h.images.Upload(c.Context(), objectName, file, fileHeader.Size,
		fileHeader.Header.Get("Content-Type"))
	if err != nil {
		logrus.WithError(err).Error("Blogs: image upload failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error uploading image"})
	}

	updated, err := h.blogs.SetImageURL(c.Context(), id, url)
	if err != nil {
		logrus.WithError(err).Error("Blogs: image url update failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error uploading image"})
	}

	return c.JSON(fiber.Map{
		"message": "Image uploaded",
		"blog":    updated,
	})
}

// Delete removes a post. Allowed for the post's author or an admin.
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	blog, err := h.blogs.FindByID(c.Context(), id)
	if err == store.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Blog not found"})
	}
	if err != nil {
		logrus.WithError(err).Error("Blogs: lookup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error deleting blog"})
	}

	claims := middleware.ClaimsFromCtx(c)
	if blog.Email != claims.Email && claims.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Not authorized to delete this blog"})
	}

	if err := h.blogs.Delete(c.Context(), id); err != nil && err != store.ErrNotFound {
		logrus.WithError(err).Error("Blogs: delete failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error deleting blog"})
	}

	return c.JSON(fiber.Map{"message": "Blog deleted"})
}
