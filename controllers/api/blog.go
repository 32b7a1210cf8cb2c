package api

import (
	"net/http"
	"strconv"

	log "github.com/Ptt-Alertor/logrus"
	"github.com/julienschmidt/httprouter"

	"github.com/Haven-Estates/haven-api/models/blog"
)

// ListBlogs returns all posts, newest first (public)
func ListBlogs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	blogs, err := blogRepo.List()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to list blogs"})
		return
	}
	writeJSON(w, http.StatusOK, blogs)
}

// GetBlog returns a single post (public)
func GetBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid blog id"})
		return
	}

	b, err := blogRepo.FindByID(id)
	if err != nil {
		if err == blog.ErrBlogNotFound {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "blog not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to get blog"})
		return
	}

	writeJSON(w, http.StatusOK, b)
}

// CreateBlog creates a post from a multipart form (admin)
func CreateBlog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		return
	}

	title := r.FormValue("title")
	if title == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "title is required"})
		return
	}

	b := &blog.Blog{
		Title:   title,
		Content: r.FormValue("content"),
	}

	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["image"]; len(files) > 0 {
			urls, err := saveUploads(r, files[:1], "blogs")
			if err != nil {
				log.WithError(err).Error("upload blog image")
				writeJSON(w, uploadStatus(err), ErrorResponse{Error: "failed to upload image"})
				return
			}
			b.Image = &urls[0]
		}
	}

	created, err := blogRepo.Create(b)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to create blog"})
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateBlog applies a partial update; a new image replaces the stored
// one and the old media object is removed best effort (admin)
func UpdateBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid blog id"})
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		return
	}

	current, err := blogRepo.FindByID(id)
	if err != nil {
		if err == blog.ErrBlogNotFound {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "blog not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to get blog"})
		return
	}

	var upd blog.Update
	if v := r.FormValue("title"); v != "" {
		upd.Title = &v
	}
	if v := r.FormValue("content"); v != "" {
		upd.Content = &v
	}

	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["image"]; len(files) > 0 {
			urls, err := saveUploads(r, files[:1], "blogs")
			if err != nil {
				log.WithError(err).Error("upload blog image")
				writeJSON(w, uploadStatus(err), ErrorResponse{Error: "failed to upload image"})
				return
			}
			upd.Image = &urls[0]

			if current.Image != nil {
				if err := mediaStore.Delete(r.Context(), *current.Image); err != nil {
					log.WithField("url", *current.Image).WithError(err).Warn("delete old blog image")
				}
			}
		}
	}

	updated, err := blogRepo.Update(id, upd)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to update blog"})
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteBlog removes a post and its stored image (admin)
func DeleteBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid blog id"})
		return
	}

	b, err := blogRepo.FindByID(id)
	if err != nil {
		if err == blog.ErrBlogNotFound {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "blog not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to get blog"})
		return
	}

	if err := blogRepo.Delete(id); err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to delete blog"})
		return
	}

	if b.Image != nil {
		if err := mediaStore.Delete(r.Context(), *b.Image); err != nil {
			log.WithField("url", *b.Image).WithError(err).Warn("delete blog image")
		}
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "blog deleted"})
}
