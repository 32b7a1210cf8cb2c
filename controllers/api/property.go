package api

import (
	"mime/multipart"
	"net/http"
	"strconv"

	log "github.com/Ptt-Alertor/logrus"
	"github.com/julienschmidt/httprouter"

	"github.com/Haven-Estates/haven-api/media"
	"github.com/Haven-Estates/haven-api/models/property"
)

// ListProperties returns all listings, newest first (public, cached)
func ListProperties(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	properties, err := property.CachedList(propertyRepo)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to list properties"})
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

// GetProperty returns a single listing (public)
func GetProperty(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
		return
	}

	p, err := propertyRepo.FindByID(id)
	if err != nil {
		if err == property.ErrPropertyNotFound {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "property not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to get property"})
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// saveUploads stores every file of a multipart field and returns URLs.
func saveUploads(r *http.Request, files []*multipart.FileHeader, folder string) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		url, err := mediaStore.Save(r.Context(), folder, fh.Filename, fh.Header.Get("Content-Type"), fh.Size, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func uploadStatus(err error) int {
	if err == media.ErrTooLarge {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// CreateProperty creates a listing from a multipart form (admin)
func CreateProperty(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		return
	}

	title := r.FormValue("title")
	if title == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "title is required"})
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "price is required"})
		return
	}

	p := &property.Property{
		Title:       title,
		Description: r.FormValue("description"),
		Price:       price,
		Location:    r.FormValue("location"),
		Images:      []string{},
	}

	if r.MultipartForm != nil {
		images, err := saveUploads(r, r.MultipartForm.File["images"], "properties/images")
		if err != nil {
			log.WithError(err).Error("upload property images")
			writeJSON(w, uploadStatus(err), ErrorResponse{Error: "failed to upload images"})
			return
		}
		p.Images = images

		if videos := r.MultipartForm.File["video"]; len(videos) > 0 {
			urls, err := saveUploads(r, videos[:1], "properties/videos")
			if err != nil {
				log.WithError(err).Error("upload property video")
				writeJSON(w, uploadStatus(err), ErrorResponse{Error: "failed to upload video"})
				return
			}
			p.Video = &urls[0]
		}
	}

	created, err := propertyRepo.Create(p)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to create property"})
		return
	}

	property.InvalidateListCache()
	writeJSON(w, http.StatusCreated, created)
}

// UpdateProperty applies a partial multipart update (admin). New images
// replace the stored set when replaceImages=true, otherwise extend it.
func UpdateProperty(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
		return
	}

	// Existence check first, so uploads never orphan objects for a
	// listing that is not there.
	if _, err := propertyRepo.FindByID(id); err != nil {
		if err == property.ErrPropertyNotFound {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "property not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to get property"})
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		return
	}

	var upd property.Update
	if v := r.FormValue("title"); v != "" {
		upd.Title = &v
	}
	if v := r.FormValue("description"); v != "" {
		upd.Description = &v
	}
	if v := r.FormValue("location"); v != "" {
		upd.Location = &v
	}
	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid price"})
			return
		}
		upd.Price = &price
	}

	var images []string
	var video *string
	if r.MultipartForm != nil {
		images, err = saveUploads(r, r.MultipartForm.File["images"], "properties/images")
		if err != nil {
			log.WithError(err).Error("upload property images")
			writeJSON(w, uploadStatus(err), ErrorResponse{Error: "failed to upload images"})
			return
		}

		if videos := r.MultipartForm.File["video"]; len(videos) > 0 {
			urls, err := saveUploads(r, videos[:1], "properties/videos")
			if err != nil {
				log.WithError(err).Error("upload property video")
				writeJSON(w, uploadStatus(err), ErrorResponse{Error: "failed to upload video"})
				return
			}
			video = &urls[0]
		}
	}

	replaceImages := r.FormValue("replaceImages") == "true"

	updated, err := propertyRepo.Update(id, upd, images, replaceImages, video)
	if err != nil {
		if err == property.ErrPropertyNotFound {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "property not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to update property"})
		return
	}

	property.InvalidateListCache()
	writeJSON(w, http.StatusOK, updated)
}

// DeleteProperty removes a listing and its stored media (admin)
func DeleteProperty(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
		return
	}

	p, err := propertyRepo.FindByID(id)
	if err != nil {
		if err == property.ErrPropertyNotFound {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "property not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to get property"})
		return
	}

	if err := propertyRepo.Delete(id); err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to delete property"})
		return
	}

	// Media cleanup is best effort; a stale object is not worth a 500.
	for _, url := range p.Images {
		if err := mediaStore.Delete(r.Context(), url); err != nil {
			log.WithField("url", url).WithError(err).Warn("delete property image")
		}
	}
	if p.Video != nil {
		if err := mediaStore.Delete(r.Context(), *p.Video); err != nil {
			log.WithField("url", *p.Video).WithError(err).Warn("delete property video")
		}
	}

	property.InvalidateListCache()
	writeJSON(w, http.StatusOK, MessageResponse{Message: "property deleted"})
}

// DeletePropertyImage removes one image by position (admin)
func DeletePropertyImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
		return
	}
	index, err := strconv.Atoi(ps.ByName("index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid image index"})
		return
	}

	p, err := propertyRepo.FindByID(id)
	if err != nil {
		if err == property.ErrPropertyNotFound {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "property not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to get property"})
		return
	}

	var removed string
	if index >= 0 && index < len(p.Images) {
		removed = p.Images[index]
	}

	updated, err := propertyRepo.RemoveImage(id, index)
	if err != nil {
		if err == property.ErrImageNotFound {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "image not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to delete image"})
		return
	}

	if removed != "" {
		if err := mediaStore.Delete(r.Context(), removed); err != nil {
			log.WithField("url", removed).WithError(err).Warn("delete property image")
		}
	}

	property.InvalidateListCache()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "image deleted",
		"property": updated,
	})
}

// DeletePropertyVideo clears the stored video (admin)
func DeletePropertyVideo(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
		return
	}

	p, err := propertyRepo.FindByID(id)
	if err != nil {
		if err == property.ErrPropertyNotFound {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "property not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to get property"})
		return
	}

	updated, err := propertyRepo.RemoveVideo(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to delete video"})
		return
	}

	if p.Video != nil {
		if err := mediaStore.Delete(r.Context(), *p.Video); err != nil {
			log.WithField("url", *p.Video).WithError(err).Warn("delete property video")
		}
	}

	property.InvalidateListCache()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "video deleted",
		"property": updated,
	})
}
