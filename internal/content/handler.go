package content

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sidra-al/Double-H-Portfolio/internal/database"
	"github.com/sidra-al/Double-H-Portfolio/internal/httpx"
	"github.com/sidra-al/Double-H-Portfolio/internal/uploads"
)

// Resource is the CRUD handler set for one record kind. The same contract
// backs projects, partners, and hero entries; only the kind, its label in
// messages, and whether a description is mandatory differ.
type Resource struct {
	kind               string
	label              string
	requireDescription bool
	receiver           *uploads.Receiver
}

func NewResource(kind, label string, requireDescription bool, receiver *uploads.Receiver) *Resource {
	return &Resource{
		kind:               kind,
		label:              label,
		requireDescription: requireDescription,
		receiver:           receiver,
	}
}

func (r *Resource) Register(rg *gin.RouterGroup) {
	rg.GET("", r.list)
	rg.GET("/:id", r.getByID)
	rg.POST("", r.create)
	rg.PUT("/:id", r.update)
	rg.DELETE("/:id", r.delete)
}

// create accepts a multipart (or urlencoded) form with up to 10 files
// under the field "images". Files are validated and written before the
// record is persisted; there is no transaction spanning the two, so a
// failed record write can leave stored files behind.
func (r *Resource) create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	description := c.PostForm("description")
	link := c.PostForm("link")

	if name == "" {
		httpx.Fail(c, httpx.Validation("Name is required"))
		return
	}
	if r.requireDescription && strings.TrimSpace(description) == "" {
		httpx.Fail(c, httpx.Validation("Description is required"))
		return
	}

	date, err := parseDate(c.PostForm("date"))
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	images := []string{}
	if form, ferr := c.MultipartForm(); ferr == nil && form != nil {
		stored, serr := r.receiver.Store(form.File["images"], r.kind)
		if serr != nil {
			httpx.Fail(c, serr)
			return
		}
		if stored != nil {
			images = stored
		}
	} else if ferr != nil && !errors.Is(ferr, http.ErrNotMultipart) {
		httpx.Fail(c, httpx.Validation("Invalid form data"))
		return
	}

	rec := Record{
		Kind:        r.kind,
		Name:        name,
		Description: description,
		Date:        date,
		Link:        link,
		Images:      images,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		httpx.Fail(c, httpx.Internal("Failed to create "+strings.ToLower(r.label), err))
		return
	}

	httpx.Created(c, r.label+" created successfully", rec)
}

func (r *Resource) list(c *gin.Context) {
	var recs []Record
	err := database.DB.Where("kind = ?", r.kind).Order("created_at DESC").Find(&recs).Error
	if err != nil {
		httpx.Fail(c, httpx.Internal("Failed to fetch "+strings.ToLower(r.label)+" records", err))
		return
	}
	httpx.List(c, len(recs), recs)
}

func (r *Resource) getByID(c *gin.Context) {
	rec, err := r.load(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, "", rec)
}

type updateDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Link        *string `json:"link"`
}

// update merges the supplied fields into the existing record and
// re-validates the result. Absent keys leave fields untouched. Images are
// immutable through this path: an "images" key in the body is ignored.
func (r *Resource) update(c *gin.Context) {
	rec, err := r.load(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	var dto updateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		httpx.Fail(c, httpx.Validation("Invalid request body"))
		return
	}

	if dto.Name != nil {
		rec.Name = strings.TrimSpace(*dto.Name)
	}
	if dto.Description != nil {
		rec.Description = *dto.Description
	}
	if dto.Link != nil {
		rec.Link = *dto.Link
	}
	if dto.Date != nil {
		if *dto.Date == "" {
			rec.Date = nil
		} else {
			date, derr := parseDate(*dto.Date)
			if derr != nil {
				httpx.Fail(c, derr)
				return
			}
			rec.Date = date
		}
	}

	if rec.Name == "" {
		httpx.Fail(c, httpx.Validation("Name is required"))
		return
	}
	if r.requireDescription && strings.TrimSpace(rec.Description) == "" {
		httpx.Fail(c, httpx.Validation("Description is required"))
		return
	}

	if err := database.DB.Save(rec).Error; err != nil {
		httpx.Fail(c, httpx.Internal("Failed to update "+strings.ToLower(r.label), err))
		return
	}

	httpx.OK(c, r.label+" updated successfully", rec)
}

// delete removes the record only; referenced files stay on disk.
func (r *Resource) delete(c *gin.Context) {
	id, err := r.parseID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	result := database.DB.Where("kind = ?", r.kind).Delete(&Record{}, id)
	if result.Error != nil {
		httpx.Fail(c, httpx.Internal("Failed to delete "+strings.ToLower(r.label), result.Error))
		return
	}
	if result.RowsAffected == 0 {
		httpx.Fail(c, httpx.NotFound(r.label+" not found"))
		return
	}

	httpx.OK(c, r.label+" deleted successfully", nil)
}

func (r *Resource) load(c *gin.Context) (*Record, error) {
	id, err := r.parseID(c)
	if err != nil {
		return nil, err
	}

	var rec Record
	dberr := database.DB.First(&rec, "id = ? AND kind = ?", id, r.kind).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return nil, httpx.NotFound(r.label + " not found")
	}
	if dberr != nil {
		return nil, httpx.Internal("Failed to fetch "+strings.ToLower(r.label), dberr)
	}
	return &rec, nil
}

func (r *Resource) parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, httpx.Validation("Invalid " + strings.ToLower(r.label) + " ID")
	}
	return uint(id), nil
}

// parseDate accepts RFC 3339 timestamps or plain yyyy-mm-dd dates, which
// is what the dashboard's date inputs submit.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	return nil, httpx.Validation("Invalid date format")
}
