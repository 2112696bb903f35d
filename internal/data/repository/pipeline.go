package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	usersCollection   = "users"
	ticketsCollection = "tickets"
	moviesCollection  = "movies"
	cinemasCollection = "cinemas"

	// versionField is the document revision counter shared with other
	// writers of these collections.
	versionField = "__v"
)

func exclude(fields ...string) bson.D {
	d := make(bson.D, 0, len(fields))
	for _, f := range fields {
		d = append(d, bson.E{Key: f, Value: 0})
	}
	return d
}

func skipStage(n int64) bson.D {
	return bson.D{{Key: "$skip", Value: n}}
}

func limitStage(n int64) bson.D {
	return bson.D{{Key: "$limit", Value: n}}
}

func projectStage(spec bson.D) bson.D {
	return bson.D{{Key: "$project", Value: spec}}
}

func matchStage(filter bson.D) bson.D {
	return bson.D{{Key: "$match", Value: filter}}
}

// lookupByID joins from.foreignField == localField, stripping the version
// field of the joined documents, and stores the result under as.
func lookupByID(from, localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: "_id"},
		{Key: "pipeline", Value: mongo.Pipeline{projectStage(exclude(versionField))}},
		{Key: "as", Value: as},
	}}}
}

// userListPipeline pages through users in natural order. No sort is applied,
// so pages are only stable while the collection is not written to.
func userListPipeline(skip, limit int64) mongo.Pipeline {
	return mongo.Pipeline{
		skipStage(skip),
		limitStage(limit),
		projectStage(exclude("password", versionField)),
	}
}

// userProfilePipeline matches one user and attaches, as "tickets", every
// ticket of that user whose showTime is after now. Each ticket carries its
// resolved "movie" and "cinema" arrays.
func userProfilePipeline(userID primitive.ObjectID, now time.Time) mongo.Pipeline {
	upcoming := bson.D{{Key: "$expr", Value: bson.D{
		{Key: "$and", Value: bson.A{
			bson.D{{Key: "$eq", Value: bson.A{"$user", "$$userId"}}},
			bson.D{{Key: "$gt", Value: bson.A{"$showTime", now}}},
		}},
	}}}

	tickets := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: ticketsCollection},
		{Key: "let", Value: bson.D{{Key: "userId", Value: "$_id"}}},
		{Key: "pipeline", Value: mongo.Pipeline{
			matchStage(upcoming),
			projectStage(exclude("user", versionField)),
			lookupByID(moviesCollection, "movie", "movie"),
			lookupByID(cinemasCollection, "cinema", "cinema"),
		}},
		{Key: "as", Value: "tickets"},
	}}}

	return mongo.Pipeline{
		matchStage(bson.D{{Key: "_id", Value: userID}}),
		projectStage(exclude("password", versionField)),
		tickets,
	}
}
