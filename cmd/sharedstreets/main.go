package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"time"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	sharedstreets "github.com/sharedstreets/sharedstreets-go"
)

var (
	fileName     = flag.String("file", "roads.geojson", "Filename of GeoJSON FeatureCollection of LineString features (road geometries)")
	out          = flag.String("out", "sharedstreets.csv", "Filename of 'Comma-Separated Values' (CSV) formatted file. E.g.: if file name is 'map.csv' then 2 files will be produced: 'map.csv' (geometries), 'map_intersections.csv'")
	roadClassKey = flag.String("road-class-key", "", "Feature property holding the road class (name or numeric code). Empty means default to 'Other'")
	formOfWayKey = flag.String("form-of-way-key", "", "Feature property holding the form of way (name or numeric code). Empty means default to 'Undefined'")
	geomFormat   = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	skipDegraded = flag.Bool("skip-short", false, "Skip features with less than 2 coordinates instead of failing")
)

func main() {

	flag.Parse()

	fmt.Printf("Reading file: '%s'...", *fileName)
	st := time.Now()
	data, err := ioutil.ReadFile(*fileName)
	if err != nil {
		fmt.Println(err)
		return
	}
	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Done in %v\n\tFeatures: %d\n", time.Since(st), len(collection.Features))

	opts := &sharedstreets.GeometryOptions{
		RoadClassProperty: *roadClassKey,
		FormOfWayProperty: *formOfWayKey,
	}

	fnamePart := strings.Split(*out, ".csv") // to guarantee proper filename and its extension
	fnameGeometries := fmt.Sprintf(fnamePart[0] + ".csv")
	fnameIntersections := fmt.Sprintf(fnamePart[0] + "_intersections.csv")

	/* Geometries file */
	fileGeometries, err := os.Create(fnameGeometries)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer fileGeometries.Close()
	writerGeometries := csv.NewWriter(fileGeometries)
	defer writerGeometries.Flush()
	writerGeometries.Comma = ';'
	err = writerGeometries.Write([]string{"geometry_id", "from_intersection_id", "to_intersection_id", "forward_reference_id", "back_reference_id", "road_class", "geom"})
	if err != nil {
		fmt.Println(err)
		return
	}

	/* Intersections file */
	fileIntersections, err := os.Create(fnameIntersections)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer fileIntersections.Close()
	writerIntersections := csv.NewWriter(fileIntersections)
	defer writerIntersections.Flush()
	writerIntersections.Comma = ';'
	err = writerIntersections.Write([]string{"intersection_id", "geom"})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Computing identifiers...")
	st = time.Now()
	intersectionsSeen := make(map[string]orb.Point)
	total := 0
	for _, feature := range collection.Features {
		line, err := sharedstreets.LineFromGeoJSON(feature)
		if err != nil {
			if *skipDegraded {
				continue
			}
			fmt.Println(err)
			return
		}
		geometry, err := sharedstreets.NewGeometry(line, opts)
		if err != nil {
			if *skipDegraded {
				continue
			}
			fmt.Println(err)
			return
		}

		geomStr := ""
		if strings.ToLower(*geomFormat) == "geojson" {
			b, err := sharedstreets.PrepareGeoJSONGeometry(geometry).MarshalJSON()
			if err != nil {
				fmt.Println(err)
				return
			}
			geomStr = string(b)
		} else {
			geomStr = sharedstreets.PrepareWKTLinestring(line.Coordinates)
		}

		err = writerGeometries.Write([]string{
			geometry.ID,
			geometry.FromIntersectionID,
			geometry.ToIntersectionID,
			geometry.ForwardReferenceID,
			geometry.BackReferenceID,
			geometry.RoadClass.String(),
			geomStr,
		})
		if err != nil {
			fmt.Println(err)
			return
		}

		if _, ok := intersectionsSeen[geometry.FromIntersectionID]; !ok {
			intersectionsSeen[geometry.FromIntersectionID] = line.Coordinates[0]
		}
		if _, ok := intersectionsSeen[geometry.ToIntersectionID]; !ok {
			intersectionsSeen[geometry.ToIntersectionID] = line.Coordinates[len(line.Coordinates)-1]
		}
		total++
	}
	fmt.Printf("Done in %v\n\tGeometries: %d\n\tIntersections: %d\n", time.Since(st), total, len(intersectionsSeen))

	/* Write intersections */
	for intersectionID, pt := range intersectionsSeen {
		geomStr := ""
		if strings.ToLower(*geomFormat) == "geojson" {
			intersection := sharedstreets.NewIntersection(pt, nil)
			b, err := sharedstreets.PrepareGeoJSONIntersection(intersection).MarshalJSON()
			if err != nil {
				fmt.Println(err)
				return
			}
			geomStr = string(b)
		} else {
			geomStr = sharedstreets.PrepareWKTPoint(pt)
		}
		err = writerIntersections.Write([]string{intersectionID, geomStr})
		if err != nil {
			fmt.Println(err)
			return
		}
	}
}
