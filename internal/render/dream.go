package render

import (
	"strings"

	"github.com/dear-data/vjournal/internal/domain"
)

// DreamPlanets renders visual standard C: dream symbols as planets on orbits
// under a starfield.
func DreamPlanets(scene domain.Scene) string {
	clusters := scene.Dimensions.Clusters
	if clusters == nil {
		clusters = []domain.Cluster{}
	}
	return strings.Replace(dreamTemplate, "__CLUSTERS__", mustJSON(clusters), 1)
}

const dreamTemplate = `
// Dream Planets (Standard C)

var clusters = __CLUSTERS__;

var bounds = view.bounds;
var margin = 60;
var inner = bounds.expand(-margin);

var bg = new Path.Rectangle(bounds);
bg.fillColor = new Color(0.05, 0.07, 0.12);

var glow = new Path.Rectangle(inner.expand(10));
glow.fillColor = new Color(0.16, 0.14, 0.24, 0.96);
glow.strokeColor = new Color(0.5,0.45,0.7,0.4);
glow.strokeWidth = 1.2;

var title = new PointText(new Point(inner.left, inner.top - 20));
title.justification = 'left';
title.content = "Dream Map - Planets of the Night";
title.fillColor = new Color(0.92,0.9,0.98);
title.fontSize = 18;

if (clusters.length === 0) {
    var msg = new PointText(inner.center);
    msg.justification = 'center';
    msg.content = "No dream symbols detected.";
    msg.fillColor = new Color(0.86,0.84,0.92);
    msg.fontSize = 14;
} else {
    var center = inner.center;
    var baseRadius = Math.min(inner.width, inner.height) * 0.12;

    var planets = [];
    for (var i = 0; i < clusters.length; i++) {
        var cl = clusters[i];
        var intensity = cl.intensity || 2;
        var symbol = cl.symbol || "dream";

        var angle = (Math.PI * 2 * i) / clusters.length;
        var ring = baseRadius + intensity * 18;
        var px = center.x + Math.cos(angle) * ring;
        var py = center.y + Math.sin(angle) * ring;

        var planetR = 14 + intensity * 4;
        var planet = new Path.Circle(new Point(px, py), planetR);
        planet.fillColor = new Color(
            0.4 + Math.random()*0.25,
            0.3 + Math.random()*0.25,
            0.6 + Math.random()*0.25,
            0.9
        );
        planet.strokeColor = new Color(0.95,0.9,0.99,0.8);
        planet.strokeWidth = 1.2;

        var orbit = new Path.Circle(center, ring);
        orbit.strokeColor = new Color(0.5,0.48,0.78,0.2);
        orbit.strokeWidth = 1;
        orbit.dashArray = [4,8];

        var txt = new PointText(new Point(px, py + planetR + 14));
        txt.justification = 'center';
        txt.content = symbol;
        txt.fillColor = new Color(0.95,0.94,0.98);
        txt.fontSize = 9;

        planets.push(planet);
    }

    var stars = new Group();
    for (var s = 0; s < 90; s++) {
        var sx = inner.left + Math.random()*inner.width;
        var sy = inner.top + Math.random()*inner.height;
        var star = new Path.Circle(new Point(sx, sy), Math.random()*1.4+0.3);
        star.fillColor = new Color(0.98,0.96,0.9, Math.random()*0.8+0.2);
        stars.addChild(star);
    }

    function onFrame(event) {
        var t = event.time;
        stars.rotate(0.01, center);
        for (var i = 0; i < planets.length; i++) {
            var p = planets[i];
            p.position.x += Math.sin(t*0.4 + i)*0.3;
            p.position.y += Math.cos(t*0.3 + i)*0.3;
        }
    }
}
`
