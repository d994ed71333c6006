package handler

import (
	"net/http"

	"user-service/internal/directory"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	directory *directory.Directory
}

func NewUserHandler(d *directory.Directory) *UserHandler {
	return &UserHandler{directory: d}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.list)
	r.GET("/:email", h.getByEmail)
	r.POST("/", h.create)
	r.PUT("/:email", h.update)
	r.DELETE("/:email", h.delete)
}

func (h *UserHandler) list(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{
		"users": h.directory.List(),
	})
}

func (h *UserHandler) getByEmail(c *gin.Context) {
	email := c.Param("email")
	c.JSON(http.StatusOK, h.directory.FindByEmail(email))
}

// create appends a record built from the query parameters. Only the
// parameters actually present end up in the record; nothing is validated,
// matching the directory's schemaless contract.
func (h *UserHandler) create(c *gin.Context) {
	record := directory.Record{}
	for _, field := range []string{"firstName", "lastName", "email", "DOB"} {
		if value, ok := c.GetQuery(field); ok {
			record[field] = value
		}
	}
	h.directory.Add(record)

	c.String(http.StatusOK, "The user %s has been added!", c.Query("firstName"))
}

// update rewrites the DOB of the first record matching the email. The
// "not found" case deliberately answers 200 with a plain-text message,
// as the original did.
func (h *UserHandler) update(c *gin.Context) {
	email := c.Param("email")
	dob, hasDOB := c.GetQuery("DOB")

	found := h.directory.UpdateByEmail(email, func(r directory.Record) {
		if hasDOB {
			r["DOB"] = dob
		}
	})
	if !found {
		c.String(http.StatusOK, "Unable to find user!")
		return
	}

	c.String(http.StatusOK, "User with the email %s updated.", email)
}

func (h *UserHandler) delete(c *gin.Context) {
	email := c.Param("email")
	h.directory.DeleteByEmail(email)

	c.String(http.StatusOK, "User with the email %s deleted.", email)
}
